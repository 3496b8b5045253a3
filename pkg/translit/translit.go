// Package translit converts Serbian Cyrillic text into uppercase Latin script,
// the form expected by the address parser.
package translit

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/transform"
)

var alphabet = [...]struct {
	cyrillic rune
	latin    string
}{
	{'А', "A"}, {'Б', "B"}, {'В', "V"}, {'Г', "G"}, {'Д', "D"},
	{'Ђ', "Đ"}, {'Е', "E"}, {'Ж', "Ž"}, {'З', "Z"}, {'И', "I"},
	{'Ј', "J"}, {'К', "K"}, {'Л', "L"}, {'Љ', "Lj"}, {'М', "M"},
	{'Н', "N"}, {'Њ', "Nj"}, {'О', "O"}, {'П', "P"}, {'Р', "R"},
	{'С', "S"}, {'Т', "T"}, {'Ћ', "Ć"}, {'У', "U"}, {'Ф', "F"},
	{'Х', "H"}, {'Ц', "C"}, {'Ч', "Č"}, {'Џ', "Dž"}, {'Ш', "Š"},
}

var table = func() map[rune]string {
	m := make(map[rune]string, 2*len(alphabet))
	for _, l := range alphabet {
		m[l.cyrillic] = l.latin
		m[unicode.ToLower(l.cyrillic)] = l.latin
	}
	return m
}()

var _ transform.Transformer = latinizer{}

// latinizer replaces Cyrillic letters and copies every other rune unchanged.
type latinizer struct {
	transform.NopResetter
}

func (latinizer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}

		var out []byte
		if latin, ok := table[r]; ok {
			out = []byte(latin)
		} else {
			out = src[nSrc : nSrc+size]
		}
		if nDst+len(out) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], out)
		nSrc += size
	}
	return nDst, nSrc, nil
}

// NewTransformer returns a transformer that transliterates and uppercases.
// The result keeps state between calls and must not be shared between goroutines.
func NewTransformer() transform.Transformer {
	return transform.Chain(latinizer{}, cases.Upper(language.SerbianLatin))
}

// Transliterate converts s to uppercase Latin script.
func Transliterate(s string) string {
	out, _, err := transform.String(NewTransformer(), s)
	if err != nil {
		// neither transformer reports errors other than short buffers
		return s
	}
	return out
}
