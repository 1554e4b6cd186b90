package limiter

// Clipboard provides host-level clipboard integration for paste sources.
//
// Errors must not crash the host; callers decide whether to surface them.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

// PasteText reads the clipboard through cb and fits the text for insertion
// into a document of docLength characters. A nil clipboard pastes nothing.
func PasteText(l Limiter, docLength int, cb Clipboard) (string, bool, error) {
	if cb == nil {
		return "", false, nil
	}
	text, err := cb.ReadText()
	if err != nil {
		return "", false, err
	}
	fitted, cut := l.FitText(docLength, text)
	return fitted, cut, nil
}
