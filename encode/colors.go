package encode

import (
	"strings"

	"github.com/fatih/color"

	"github.com/signadot/jsonlens/patch"
)

type ColorAttr int

const (
	OpColor ColorAttr = iota
	PathColor
	ValueColor
	InsertColor
	DeleteColor
)

// Colorable selects a color. Op is only set for OpColor.
type Colorable struct {
	Op   patch.OpType
	Attr ColorAttr
}

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	colors.Map[Colorable{Op: patch.OpAdd, Attr: OpColor}] = color.GreenString
	colors.Map[Colorable{Op: patch.OpRemove, Attr: OpColor}] = color.RedString
	colors.Map[Colorable{Op: patch.OpReplace, Attr: OpColor}] = color.YellowString
	colors.Map[Colorable{Op: patch.OpMove, Attr: OpColor}] = color.MagentaString
	colors.Map[Colorable{Op: patch.OpCopy, Attr: OpColor}] = color.MagentaString
	colors.Map[Colorable{Op: patch.OpTest, Attr: OpColor}] = color.CyanString
	colors.Map[Colorable{Attr: PathColor}] = color.RGB(128, 168, 196).SprintfFunc()
	colors.Map[Colorable{Attr: ValueColor}] = color.RGB(196, 168, 128).SprintfFunc()
	colors.Map[Colorable{Attr: InsertColor}] = color.GreenString
	colors.Map[Colorable{Attr: DeleteColor}] = color.RedString

	for able, f := range colors.Map {
		colors.Map[able] = func(v string, _ ...any) string {
			return f(strings.ReplaceAll(v, "%", "%%"))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(able Colorable, s string) string {
	return c.Get(able)(s)
}

func (c *Colors) Get(able Colorable) func(string, ...any) string {
	if c == nil {
		return colorDefault
	}
	f := c.Map[able]
	if f == nil {
		return c.Default
	}
	return f
}
