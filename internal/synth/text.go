package synth

import "strings"

// Text is an optional prompt value. The zero value is absent.
type Text struct {
	value   string
	present bool
}

func Present(value string) Text {
	return Text{value: value, present: true}
}

func Absent() Text {
	return Text{}
}

// TextFrom maps empty and whitespace-only input to Absent.
func TextFrom(raw string) Text {
	if strings.TrimSpace(raw) == "" {
		return Absent()
	}
	return Present(raw)
}

func (t Text) IsPresent() bool {
	return t.present && strings.TrimSpace(t.value) != ""
}

func (t Text) Value() string {
	if !t.IsPresent() {
		return ""
	}
	return t.value
}

// Excerpt returns the first n runes of the text.
func (t Text) Excerpt(n int) string {
	v := t.Value()
	if n <= 0 {
		return ""
	}
	runes := []rune(v)
	if len(runes) <= n {
		return v
	}
	return string(runes[:n])
}
