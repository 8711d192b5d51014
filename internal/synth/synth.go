// Package synth produces the canned responses of the demo. Nothing here loads
// a model: every output is a pre-written template selected by whether an image
// and a text prompt were supplied.
package synth

import "fmt"

const DefaultExcerptLength = 50

type Image struct {
	Data     []byte
	MimeType string
}

// Request mirrors the five form inputs. Only the presence of Image and Text
// affects the response.
type Request struct {
	Image        *Image
	Text         Text
	SystemPrompt Text
	MaxTokens    int
	Temperature  float64
}

type Response struct {
	Text     string
	Template Template
}

type Options struct {
	ExcerptLength int
}

type Synthesizer struct {
	excerptLength int
}

func New(opts Options) *Synthesizer {
	n := opts.ExcerptLength
	if n <= 0 {
		n = DefaultExcerptLength
	}
	return &Synthesizer{excerptLength: n}
}

func (s *Synthesizer) ExcerptLength() int {
	return s.excerptLength
}

func (s *Synthesizer) Respond(req Request) Response {
	hasImage := req.Image != nil
	return Response{
		Text:     Synthesize(req.Text, hasImage, s.excerptLength),
		Template: Select(req.Text, hasImage),
	}
}

// Select reports which template Synthesize uses for the given inputs.
func Select(text Text, hasImage bool) Template {
	switch {
	case hasImage:
		return TemplateImageText
	case text.IsPresent():
		return TemplateTextOnly
	default:
		return TemplateNeedInput
	}
}

func Synthesize(text Text, hasImage bool, excerptLength int) string {
	if excerptLength <= 0 {
		excerptLength = DefaultExcerptLength
	}

	switch Select(text, hasImage) {
	case TemplateImageText:
		if !text.IsPresent() {
			return imageTextTemplate
		}
		return fmt.Sprintf(imageAckFormat, text.Excerpt(excerptLength), Ellipsis) + imageTextTemplate
	case TemplateTextOnly:
		return textOnlyTemplate
	default:
		return needInputMessage
	}
}

// GenerateText is the text-only generation tab. Unlike Synthesize it echoes
// the max-token bound, clamped to MaxTokens.
func GenerateText(text Text, maxTokens int) string {
	if !text.IsPresent() {
		return needInputMessage
	}
	return fmt.Sprintf(textGenerationFormat, MaxTokens.Clamp(maxTokens))
}

func ModelStatus() string {
	return readyModelStatus
}
