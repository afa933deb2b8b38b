package bracken

// phpSnippets is the static template table for PHP. Templates use LSP
// snippet syntax: $1/$2 tab stops, ${n:placeholder} defaults, $0 final
// cursor position, \$ for a literal dollar sign.
var phpSnippets = []Candidate{
	{
		Name:     "function",
		Kind:     "snippet",
		Detail:   "definition",
		Template: "function ${1:name}(${2:params}) {\n\t$0\n}",
	},
	{
		Name:     "for",
		Kind:     "snippet",
		Detail:   "loop",
		Template: "for (\\$${1:i} = 0; \\$${1:i} < ${2:count}; \\$${1:i}++) {\n\t$0\n}",
	},
	{
		Name:     "foreach",
		Kind:     "snippet",
		Detail:   "loop",
		Template: "foreach (${1:iterable} as \\$${2:value}) {\n\t$0\n}",
	},
	{
		Name:     "while",
		Kind:     "snippet",
		Detail:   "loop",
		Template: "while (${1:condition}) {\n\t$0\n}",
	},
	{
		Name:     "if",
		Kind:     "snippet",
		Detail:   "block",
		Template: "if (${1:condition}) {\n\t$0\n}",
	},
	{
		Name:     "if/else",
		Kind:     "snippet",
		Detail:   "block",
		Template: "if (${1:condition}) {\n\t$2\n} else {\n\t$0\n}",
	},
	{
		Name:     "try/catch",
		Kind:     "snippet",
		Detail:   "block",
		Template: "try {\n\t$1\n} catch (${2:\\\\Exception} \\$${3:e}) {\n\t$0\n}",
	},
	{
		Name:     "switch",
		Kind:     "snippet",
		Detail:   "block",
		Template: "switch (${1:subject}) {\n\tcase ${2:value}:\n\t\t$0\n\t\tbreak;\n\tdefault:\n\t\tbreak;\n}",
	},
	{
		Name:     "class",
		Kind:     "snippet",
		Detail:   "definition",
		Template: "class ${1:Name} {\n\t$0\n}",
	},
}
