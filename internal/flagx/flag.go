// Package flagx lets several flag sets share one command line: each loader
// picks out only the flags it owns and ignores the rest.
package flagx

import (
	"flag"
	"strings"
)

// FilterArgs keeps only the flags listed in allowed, together with their
// values, and drops everything else.
//
// Recognised forms are "-f value" and "-f=value". Names listed in boolFlags
// never consume the following argument, so "-s -a :8080" keeps "-s" alone.
// The result is never nil.
func FilterArgs(args []string, allowed []string, boolFlags ...string) []string {
	owned := make(map[string]bool, len(allowed))
	for _, f := range allowed {
		owned[f] = true
	}
	isBool := make(map[string]bool, len(boolFlags))
	for _, f := range boolFlags {
		isBool[f] = true
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name, _, _ := strings.Cut(arg, "=")
			if owned[name] {
				filtered = append(filtered, arg)
			}
			continue
		}

		if !owned[arg] {
			continue
		}
		filtered = append(filtered, arg)

		if isBool[arg] {
			continue
		}
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}

	return filtered
}

// ConfigFile returns the JSON config path given with -c or -config, or ""
// when neither is present. Other arguments are ignored.
func ConfigFile(args []string) string {
	var path string

	fs := flag.NewFlagSet("config-file", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "path to JSON config file")
	fs.StringVar(&path, "c", "", "path to JSON config file (short)")
	_ = fs.Parse(FilterArgs(args, []string{"-c", "-config"}))

	return path
}
