package pdf

import (
	"fmt"
	"strings"
	"time"
)

// Filename builds the download name for a rendered batch:
// Frequencia_<person-or-count>_<DD-MM>_a_<DD-MM>.pdf.
func Filename(names []string, from, to time.Time) string {
	token := fmt.Sprintf("%d_monitores", len(names))
	if len(names) == 1 {
		token = sanitizeName(names[0])
	}
	return fmt.Sprintf("Frequencia_%s_%s_a_%s.pdf",
		token, from.Format("02-01"), to.Format("02-01"))
}

func sanitizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "monitor"
	}

	var b strings.Builder
	for _, r := range name {
		switch {
		case r == ' ':
			b.WriteRune('_')
		case r == '/' || r == '\\' || r == ':' || r == '*' || r == '?' || r == '"' || r == '<' || r == '>' || r == '|':
			// path-hostile on common filesystems
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
