package fasturi

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
)

var (
	leftAttrsFilled = []color.Attribute{color.FgHiYellow, color.Bold}
	leftAttrsBlank  = []color.Attribute{color.FgHiBlack}
	rightAttrs      = []color.Attribute{color.FgHiWhite}
)

// PrintComponents pretty-prints the components of uri to standard output.
func PrintComponents(uri string, c Components) {
	FprintComponents(color.Output, uri, c)
}

// FprintComponents pretty-prints the components of uri to w.
// Labels of absent components are dimmed.
func FprintComponents(w io.Writer, uri string, c Components) {
	var username, password Optional[string]
	if ui, ok := c.UserInfo.Get(); ok {
		username, password = ui.Username, ui.Password
	}
	port := None[string]()
	if p, ok := c.Port.Get(); ok {
		port = Some(strconv.Itoa(p))
	}
	hostType := None[string]()
	if t := c.HostType(); t != NoHost {
		hostType = Some(t.String())
	}

	printRow(w, "      uri", optionalNonEmpty(uri))
	printRow(w, "   scheme", c.Scheme)
	printRow(w, "authority", c.Authority)
	printRow(w, " username", username)
	printRow(w, " password", password)
	printRow(w, "     host", c.Host)
	printRow(w, "host type", hostType)
	printRow(w, "     port", port)
	printRow(w, "     path", c.Path)
	printRow(w, "    query", c.Query)
	printRow(w, " fragment", c.Fragment)
	if c.IsURN {
		printRow(w, "      urn", Some("yes"))
	} else {
		printRow(w, "      urn", None[string]())
	}
	fmt.Fprintln(w)
}

func printRow(w io.Writer, label string, value Optional[string]) {
	v, ok := value.Get()
	if ok {
		color.New(leftAttrsFilled...).Fprint(w, label+": ")
	} else {
		color.New(leftAttrsBlank...).Fprint(w, label+": ")
	}
	color.New(rightAttrs...).Fprintln(w, v)
}

func optionalNonEmpty(s string) Optional[string] {
	if s == "" {
		return None[string]()
	}
	return Some(s)
}
