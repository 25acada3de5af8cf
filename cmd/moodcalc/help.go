package main

// helpMarkdown is rendered with glamour into the help overlay.
const helpMarkdown = `# moodcalc keys

| Key | Action |
|-----|--------|
| ` + "`0`–`9` `.`" + ` | enter digits / decimal point |
| ` + "`+` `-` `*` `x` `/`" + ` | select operator |
| ` + "`enter` `=`" + ` | evaluate |
| ` + "`%`" + ` | percent of captured operand |
| ` + "`backspace`" + ` | delete last digit |
| ` + "`c`" + ` | clear |
| ` + "`s`" + ` | basic ⇄ scientific |
| ` + "`u`" + ` | degrees ⇄ radians |
| ` + "`m` `r` `a` `M`" + ` | memory store / recall / add / clear |

## Scientific mode

| Key | Function |
|-----|----------|
| ` + "`S` `O` `T`" + ` | sin, cos, tan |
| ` + "`q` `^` `#`" + ` | √, x², x³ |
| ` + "`l` `n`" + ` | log₁₀, ln |
| ` + "`!` `i` `e`" + ` | n!, 1/x, eˣ |
| ` + "`p` `E`" + ` | π, e |

Press any key to close this help.
`

// renderHelp draws the help overlay.
func renderHelp() string {
	return renderMarkdown(helpMarkdown)
}
