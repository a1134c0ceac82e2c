package docnotes

import (
	"fmt"
	"slices"

	"go.abhg.dev/docnotes/internal/must"
)

// Note is one piece of extra documentation for an identifier:
// text to concatenate verbatim onto whatever the registry already holds.
// There is no templating.
type Note struct {
	// Name of the identifier the note is for.
	Name string

	// Kind of documentation the note extends.
	Kind Kind

	// Text appended to the documentation.
	Text string
}

// Builtin returns the note set that ships with docnotes:
// usage examples and reference links
// for standard constructs that newcomers look up most often.
//
// The returned slice is a copy. Callers may modify it freely.
func Builtin() []Note {
	return slices.Clone(_builtin)
}

func init() {
	must.NotErrorf(validateNotes(_builtin), "builtin note set")
}

// validateNotes reports the first malformed note:
// an empty name, empty text,
// or a second note for a (name, kind) pair already seen.
func validateNotes(notes []Note) error {
	seen := make(map[docKey]struct{}, len(notes))
	for i, n := range notes {
		if n.Name == "" {
			return fmt.Errorf("note %d has no name", i)
		}
		if n.Text == "" {
			return fmt.Errorf("note for %v %v has no text", n.Kind, n.Name)
		}
		key := docKey{n.Name, n.Kind}
		if _, ok := seen[key]; ok {
			return fmt.Errorf("duplicate note for %v %v", n.Kind, n.Name)
		}
		seen[key] = struct{}{}
	}
	return nil
}

var _builtin = []Note{
	{
		Name: "for-range",
		Text: "\n\nExample:\n\n" +
			"\tfruits := []string{\"apple\", \"banana\", \"cherry\"}\n" +
			"\tfor i, fruit := range fruits {\n" +
			"\t\tfmt.Println(i, fruit)\n" +
			"\t}\n" +
			"\nThe index may be omitted with 'for fruit := range fruits',\n" +
			"and both variables may be omitted to loop a fixed number of times.\n" +
			"Ranging over a map visits keys in an unspecified order.\n" +
			"\nReference: https://go.dev/ref/spec#For_statements\n" +
			"See also: https://go.dev/tour/moretypes/16\n",
	},
	{
		Name: "iter.Seq",
		Text: "\n\nExample:\n\n" +
			"\tfunc Evens(limit int) iter.Seq[int] {\n" +
			"\t\treturn func(yield func(int) bool) {\n" +
			"\t\t\tfor n := 0; n < limit; n += 2 {\n" +
			"\t\t\t\tif !yield(n) {\n" +
			"\t\t\t\t\treturn\n" +
			"\t\t\t\t}\n" +
			"\t\t\t}\n" +
			"\t\t}\n" +
			"\t}\n" +
			"\nA Seq is consumed with an ordinary range loop:\n" +
			"'for n := range Evens(10) { ... }'.\n" +
			"Stop iterating early with break; yield then returns false.\n" +
			"\nReference: https://pkg.go.dev/iter#Seq\n" +
			"See also: https://go.dev/blog/range-functions\n",
	},
	{
		Name: "strings.Map",
		Text: "\n\nExample:\n\n" +
			"\trot13 := func(r rune) rune {\n" +
			"\t\tswitch {\n" +
			"\t\tcase r >= 'a' && r <= 'z':\n" +
			"\t\t\treturn 'a' + (r-'a'+13)%26\n" +
			"\t\tcase r >= 'A' && r <= 'Z':\n" +
			"\t\t\treturn 'A' + (r-'A'+13)%26\n" +
			"\t\t}\n" +
			"\t\treturn r\n" +
			"\t}\n" +
			"\tfmt.Println(strings.Map(rot13, \"Gopher\"))\n" +
			"\nReturning a negative rune from the mapping function\n" +
			"drops the character from the result.\n" +
			"\nReference: https://pkg.go.dev/strings#Map\n",
	},
	{
		Name: "sort.Slice",
		Text: "\n\nExample:\n\n" +
			"\tpeople := []Person{{\"Ada\", 36}, {\"Bob\", 24}}\n" +
			"\tsort.Slice(people, func(i, j int) bool {\n" +
			"\t\treturn people[i].Age < people[j].Age\n" +
			"\t})\n" +
			"\nThe sort is not stable; use sort.SliceStable to keep\n" +
			"equal elements in their original order.\n" +
			"For new code prefer slices.SortFunc,\n" +
			"which is type-safe and usually faster.\n" +
			"\nReference: https://pkg.go.dev/sort#Slice\n",
	},
	{
		Name: "slices.SortFunc",
		Text: "\n\nExample:\n\n" +
			"\tpeople := []Person{{\"Ada\", 36}, {\"Bob\", 24}}\n" +
			"\tslices.SortFunc(people, func(a, b Person) int {\n" +
			"\t\treturn cmp.Compare(a.Age, b.Age)\n" +
			"\t})\n" +
			"\nThe comparison function follows the cmp convention:\n" +
			"negative when a sorts before b, zero when equal, positive after.\n" +
			"\nReference: https://pkg.go.dev/slices#SortFunc\n" +
			"See also: https://pkg.go.dev/cmp#Compare\n",
	},
	{
		Name: "sort.Sort",
		Text: "\n\nExample:\n\n" +
			"\ttype byLen []string\n" +
			"\n" +
			"\tfunc (s byLen) Len() int           { return len(s) }\n" +
			"\tfunc (s byLen) Less(i, j int) bool { return len(s[i]) < len(s[j]) }\n" +
			"\tfunc (s byLen) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }\n" +
			"\n" +
			"\tsort.Sort(byLen(words))\n" +
			"\nImplementing sort.Interface is only worthwhile\n" +
			"when the same ordering is reused in several places;\n" +
			"otherwise sort.Slice or slices.SortFunc is shorter.\n" +
			"\nReference: https://pkg.go.dev/sort#Sort\n",
	},
	{
		Name: "struct-embedding",
		Text: "\n\nExample:\n\n" +
			"\ttype Logger struct{ prefix string }\n" +
			"\n" +
			"\tfunc (l *Logger) Log(msg string) { fmt.Println(l.prefix, msg) }\n" +
			"\n" +
			"\ttype Server struct {\n" +
			"\t\t*Logger // Server now has a Log method.\n" +
			"\t\taddr string\n" +
			"\t}\n" +
			"\nEmbedding promotes the inner type's methods and fields\n" +
			"to the outer type. It is composition, not inheritance:\n" +
			"the promoted method still sees only the embedded value.\n" +
			"\nReference: https://go.dev/doc/effective_go#embedding\n",
	},
	{
		Name: "method-sets",
		Text: "\n\nExample:\n\n" +
			"\ttype Counter struct{ n int }\n" +
			"\n" +
			"\tfunc (c Counter) Value() int { return c.n }\n" +
			"\tfunc (c *Counter) Add()      { c.n++ }\n" +
			"\n" +
			"\tvar c Counter\n" +
			"\tc.Add() // works: c is addressable\n" +
			"\nThe method set of *Counter includes Value and Add;\n" +
			"the method set of Counter includes only Value.\n" +
			"This matters for interface satisfaction:\n" +
			"only *Counter satisfies an interface that lists Add.\n" +
			"\nReference: https://go.dev/ref/spec#Method_sets\n",
	},
	{
		Name: "http.DefaultClient",
		Kind: Variable,
		Text: "\n\nExample:\n\n" +
			"\t// http.Get uses http.DefaultClient under the hood.\n" +
			"\tclient := &http.Client{Timeout: 10 * time.Second}\n" +
			"\tresp, err := client.Get(url)\n" +
			"\nThe default client has no timeout.\n" +
			"Long-lived programs should construct their own http.Client\n" +
			"rather than rely on the package-level variable.\n" +
			"\nReference: https://pkg.go.dev/net/http#Client\n",
	},
	{
		Name: "flag.CommandLine",
		Kind: Variable,
		Text: "\n\nExample:\n\n" +
			"\tfs := flag.NewFlagSet(\"subcmd\", flag.ContinueOnError)\n" +
			"\tverbose := fs.Bool(\"v\", false, \"verbose output\")\n" +
			"\t_ = fs.Parse(args)\n" +
			"\nPackage-level flag functions register on flag.CommandLine,\n" +
			"shared global state. Libraries and subcommands should take\n" +
			"their own *flag.FlagSet instead of touching the default set.\n" +
			"\nReference: https://pkg.go.dev/flag#CommandLine\n",
	},
}
