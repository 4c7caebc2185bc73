package tuicore

// escGraceMs is the quiet period after a lone ESC byte before it is taken
// to mean the Escape key itself rather than the start of a CSI/SS3/Alt
// sequence.
const escGraceMs = 50

// byteReader is the minimal pull interface the parser needs from a
// Terminal: one byte, -2 on timeout, -1 on EOF.
type byteReader interface {
	Read(timeoutMs int) (int, error)
}

// InputParser turns a stream of input bytes into Events. Between calls to
// Next it is idle, except during a bracketed paste: from the start marker
// until the end marker it stays in paste mode across calls.
type InputParser struct {
	inPaste  bool
	pasteBuf []byte
}

// NewInputParser returns an idle parser.
func NewInputParser() *InputParser { return &InputParser{} }

// Next blocks on r.Read(timeoutMs) and returns the Event it produces, or
// ok=false if the read timed out or only absorbed a partial/control byte
// that does not (yet) constitute a full event — an internal "parse
// incomplete" outcome, which never surfaces as an error.
func (p *InputParser) Next(r byteReader, timeoutMs int) (Event, bool, error) {
	if p.inPaste {
		return p.consumePaste(r, timeoutMs)
	}
	b, err := r.Read(timeoutMs)
	if err != nil {
		return Event{}, false, err
	}
	if b == -2 {
		return Event{}, false, nil // timeout
	}
	if b == -1 {
		return Event{}, false, nil // EOF: caller decides how to react
	}
	return p.dispatch(byte(b), r)
}

// pasteTerminator is the remainder of "ESC[201~" after the leading ESC,
// which signals the end of a bracketed-paste burst.
var pasteTerminator = []byte{'[', '2', '0', '1', '~'}

// consumePaste accumulates raw bytes into the in-flight paste buffer until
// it sees the ESC[201~ terminator, following the Unix parser's
// consume-until-terminator policy on both platforms.
func (p *InputParser) consumePaste(r byteReader, timeoutMs int) (Event, bool, error) {
	b, err := r.Read(timeoutMs)
	if err != nil {
		return Event{}, false, err
	}
	if b < 0 {
		return Event{}, false, nil
	}
	if b != 27 {
		p.pasteBuf = append(p.pasteBuf, byte(b))
		return Event{}, false, nil
	}

	seq := make([]byte, 0, len(pasteTerminator))
	matched := true
	for _, exp := range pasteTerminator {
		nb, err := r.Read(escGraceMs)
		if err != nil {
			return Event{}, false, err
		}
		if nb < 0 {
			matched = false
			break
		}
		seq = append(seq, byte(nb))
		if byte(nb) != exp {
			matched = false
			break
		}
	}
	if matched && len(seq) == len(pasteTerminator) {
		p.inPaste = false
		text := string(p.pasteBuf)
		p.pasteBuf = nil
		return Event{Kind: EventPaste, Paste: PasteEvent{Text: text}}, true, nil
	}
	p.pasteBuf = append(p.pasteBuf, 27)
	p.pasteBuf = append(p.pasteBuf, seq...)
	return Event{}, false, nil
}

func (p *InputParser) dispatch(b byte, r byteReader) (Event, bool, error) {
	switch {
	case b == 27:
		return p.parseEscape(r)
	case b == 3:
		return keyEvt(KeyChar, ModCtrl, 'c'), true, nil
	case b == 9:
		return keyEvt(KeyTab, 0, 0), true, nil
	case b == 10 || b == 13:
		return keyEvt(KeyEnter, 0, 0), true, nil
	case b == 127:
		return keyEvt(KeyBackspace, 0, 0), true, nil
	case b >= 1 && b <= 26:
		return keyEvt(KeyChar, ModCtrl, rune('a'+b-1)), true, nil
	case b >= 32 && b <= 126:
		return keyEvt(KeyChar, 0, rune(b)), true, nil
	case b >= 128:
		return p.parseUTF8Continuation(b, r)
	default:
		return Event{}, false, nil
	}
}

// parseUTF8Continuation reassembles a multi-byte UTF-8 codepoint (≥128) a
// byte at a time from r, since Terminal.Read hands back one byte at a
// time.
func (p *InputParser) parseUTF8Continuation(first byte, r byteReader) (Event, bool, error) {
	var n int
	switch {
	case first&0xE0 == 0xC0:
		n = 1
	case first&0xF0 == 0xE0:
		n = 2
	case first&0xF8 == 0xF0:
		n = 3
	default:
		return keyEvt(KeyChar, 0, rune(first)), true, nil
	}
	buf := []byte{first}
	for i := 0; i < n; i++ {
		nb, err := r.Read(escGraceMs)
		if err != nil {
			return Event{}, false, err
		}
		if nb < 0 {
			return Event{}, false, nil
		}
		buf = append(buf, byte(nb))
	}
	runes := []rune(string(buf))
	if len(runes) == 0 {
		return Event{}, false, nil
	}
	return keyEvt(KeyChar, 0, runes[0]), true, nil
}

// parseEscape implements the ESC state: peek the next byte with a 50ms
// grace period. Timeout means a bare Escape key; '[' enters CSI; 'O'
// enters SS3; anything else is Alt+<byte>.
func (p *InputParser) parseEscape(r byteReader) (Event, bool, error) {
	b, err := r.Read(escGraceMs)
	if err != nil {
		return Event{}, false, err
	}
	if b == -2 {
		return keyEvt(KeyEscape, 0, 0), true, nil
	}
	switch b {
	case '[':
		return p.parseCSI(r)
	case 'O':
		return p.parseSS3(r)
	default:
		mods := ModAlt
		c := rune(b)
		if c >= 'A' && c <= 'Z' {
			mods |= ModShift
		}
		return keyEvt(KeyChar, mods, c), true, nil
	}
}

var csiLetterKeys = map[byte]KeyCode{
	'A': KeyUp, 'B': KeyDown, 'C': KeyRight, 'D': KeyLeft,
	'H': KeyHome, 'F': KeyEnd,
}

var csiTildeKeys = map[int]KeyCode{
	1: KeyHome, 2: KeyInsert, 3: KeyDelete, 4: KeyEnd, 5: KeyPageUp, 6: KeyPageDown,
	11: KeyF1, 12: KeyF2, 13: KeyF3, 14: KeyF4, 15: KeyF5,
	17: KeyF6, 18: KeyF7, 19: KeyF8, 20: KeyF9, 21: KeyF10,
	23: KeyF11, 24: KeyF12,
}

const (
	pasteStartCode = 200
	pasteEndCode   = 201
)

// parseCSI accumulates digits and ';' until a terminator byte, then
// decodes the sequence by its terminator byte.
func (p *InputParser) parseCSI(r byteReader) (Event, bool, error) {
	var params []int
	cur := -1
	sgrMouse := false
	for {
		b, err := r.Read(escGraceMs)
		if err != nil {
			return Event{}, false, err
		}
		if b < 0 {
			return Event{}, false, nil
		}
		switch {
		case b == '<' && cur == -1 && len(params) == 0:
			sgrMouse = true
		case b >= '0' && b <= '9':
			if cur == -1 {
				cur = 0
			}
			cur = cur*10 + int(b-'0')
		case b == ';':
			params = append(params, maxInt(cur, 0))
			cur = -1
		case sgrMouse && (b == 'M' || b == 'm'):
			params = append(params, maxInt(cur, 0))
			return p.decodeSGRMouse(params, b == 'm'), true, nil
		case b == '~':
			params = append(params, maxInt(cur, 0))
			return p.decodeTilde(params)
		case isCSILetterTerminator(b):
			params = append(params, maxInt(cur, 0))
			return decodeCSILetter(b, params), true, nil
		default:
			// Unrecognized terminator: absorb as parse-incomplete.
			return Event{}, false, nil
		}
	}
}

func isCSILetterTerminator(b byte) bool {
	_, ok := csiLetterKeys[b]
	return ok
}

func decodeCSILetter(b byte, params []int) Event {
	code := csiLetterKeys[b]
	mods := modifiersFromCSIParam(params, 1)
	return keyEvt(code, mods, 0)
}

func (p *InputParser) decodeTilde(params []int) (Event, bool, error) {
	if len(params) == 0 {
		return Event{}, false, nil
	}
	switch params[0] {
	case pasteStartCode:
		p.inPaste = true
		p.pasteBuf = p.pasteBuf[:0]
		return Event{}, false, nil
	case pasteEndCode:
		p.inPaste = false
		text := string(p.pasteBuf)
		p.pasteBuf = nil
		return Event{Kind: EventPaste, Paste: PasteEvent{Text: text}}, true, nil
	}
	code, ok := csiTildeKeys[params[0]]
	if !ok {
		return Event{}, false, nil
	}
	mods := modifiersFromCSIParam(params, 1)
	return keyEvt(code, mods, 0), true, nil
}

// modifiersFromCSIParam reads the optional "code;mod" second parameter:
// m = raw-1; bit1=Shift, bit2=Alt, bit4=Ctrl.
func modifiersFromCSIParam(params []int, idx int) KeyModifiers {
	if len(params) <= idx {
		return 0
	}
	raw := params[idx] - 1
	var mods KeyModifiers
	if raw&1 != 0 {
		mods |= ModShift
	}
	if raw&2 != 0 {
		mods |= ModAlt
	}
	if raw&4 != 0 {
		mods |= ModCtrl
	}
	return mods
}

// decodeSGRMouse parses "button;x;y" from an SGR mouse report, 1-based
// coordinates converted to 0-based.
func (p *InputParser) decodeSGRMouse(params []int, release bool) Event {
	if len(params) < 3 {
		return Event{}
	}
	raw, px, py := params[0], params[1], params[2]
	var mods KeyModifiers
	if raw&4 != 0 {
		mods |= ModShift
	}
	if raw&8 != 0 {
		mods |= ModAlt
	}
	if raw&16 != 0 {
		mods |= ModCtrl
	}
	drag := raw&32 != 0
	kind := MousePress
	button := MouseNone
	switch {
	case raw&64 != 0:
		if raw&1 != 0 {
			kind = MouseScrollDown
		} else {
			kind = MouseScrollUp
		}
	case release:
		kind = MouseRelease
	case drag:
		kind = MouseDrag
	}
	switch raw & 3 {
	case 0:
		button = MouseLeft
	case 1:
		button = MouseMiddle
	case 2:
		button = MouseRight
	}
	return Event{Kind: EventMouse, Mouse: MouseEvent{
		Kind: kind, Button: button, X: px - 1, Y: py - 1, Modifiers: mods,
	}}
}

// parseSS3 decodes the single-byte SS3 terminator set.
func (p *InputParser) parseSS3(r byteReader) (Event, bool, error) {
	b, err := r.Read(escGraceMs)
	if err != nil {
		return Event{}, false, err
	}
	if b < 0 {
		return Event{}, false, nil
	}
	ss3Keys := map[byte]KeyCode{
		'P': KeyF1, 'Q': KeyF2, 'R': KeyF3, 'S': KeyF4,
		'A': KeyUp, 'B': KeyDown, 'C': KeyRight, 'D': KeyLeft, 'H': KeyHome, 'F': KeyEnd,
	}
	code, ok := ss3Keys[byte(b)]
	if !ok {
		return Event{}, false, nil
	}
	return keyEvt(code, 0, 0), true, nil
}

func keyEvt(code KeyCode, mods KeyModifiers, r rune) Event {
	return Event{Kind: EventKey, Key: KeyEvent{Code: code, Modifiers: mods, Codepoint: r}}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

