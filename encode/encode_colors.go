package encode

import "github.com/fatih/color"

type Colors struct {
	Field  func(string, ...any) string
	String func(string, ...any) string
	Number func(string, ...any) string
	Bool   func(string, ...any) string
	Null   func(string, ...any) string
	Punct  func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Field:  color.CyanString,
		String: color.GreenString,
		Number: color.MagentaString,
		Bool:   color.YellowString,
		Null:   color.RGB(110, 110, 110).SprintfFunc(),
		Punct:  color.RGB(255, 0, 196).SprintfFunc(),
	}
}

func (c *Colors) leaf(v any) func(string, ...any) string {
	switch v.(type) {
	case nil:
		return c.Null
	case string:
		return c.String
	case bool:
		return c.Bool
	case float64, float32, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return c.Number
	default:
		return c.String
	}
}
