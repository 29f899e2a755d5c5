// Package console は端末への色付き出力を提供します
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/gookit/color"

	"github.com/Harikalatheeswaran/Folder-Tree-View/internal/domain/model"
)

// sprinter は1つのスタイルで文字列を装飾する最小のインターフェースです
type sprinter interface {
	Sprint(a ...interface{}) string
}

// rgbBold はHEX指定の色に太字を重ねたスタイルを作ります
func rgbBold(hex string) *color.RGBStyle {
	s := color.NewRGBStyle(color.HEX(hex))
	s.SetOpts(color.Opts{color.OpBold})
	return s
}

// styleTable は StyleToken から端末スタイルへの解決表です。
// 端末が色に対応していない場合は gookit/color 側で装飾なしに落ちます。
var styleTable = map[model.StyleToken]sprinter{
	model.StyleDefault:       color.New(color.FgWhite),
	model.StylePink:          color.HEX("#FE83F8"),
	model.StyleAquaBold:      rgbBold("#22FFC4"),
	model.StyleBrightMagenta: color.New(color.FgLightMagenta),
	model.StyleBrightCyan:    color.New(color.FgLightCyan),
	model.StyleBrightGreen:   color.New(color.FgLightGreen),
	model.StyleBrightYellow:  color.New(color.FgLightYellow),
	model.StyleBrightBlue:    color.New(color.FgLightBlue),
	model.StyleBrightWhite:   color.New(color.FgLightWhite),
	model.StyleGreen:         color.New(color.FgGreen),
	model.StyleYellow:        color.New(color.FgYellow),
	model.StyleCyan:          color.New(color.FgCyan),
	model.StyleBlue:          color.New(color.FgBlue),
	model.StyleMagenta:       color.New(color.FgMagenta),
	model.StyleRed:           color.New(color.FgRed),
	model.StyleSoftWhite:     color.HEX("#D8D4D4"),
	model.StyleGreenBold:     color.New(color.FgGreen, color.OpBold),
	model.StyleYellowBold:    rgbBold("#FEFA02"),
	model.StyleCyanBold:      rgbBold("#00FFFF"),
	model.StyleRedBold:       color.New(color.FgRed, color.OpBold),
	model.StyleLimeBold:      rgbBold("#6BFF21"),
}

// Styled は text にスタイルを適用した文字列を返します。
// 解決表にないトークンはそのまま返します。
func Styled(text string, style model.StyleToken) string {
	if s, ok := styleTable[style]; ok {
		return s.Sprint(text)
	}
	return text
}

// Writer はスタイルを解決しながら行を書き出すための構造体です
type Writer struct {
	out io.Writer
}

// NewWriter は新しい Writer インスタンスを作成します。
// writer が nil の場合は標準出力に書き出します。
func NewWriter(out io.Writer) *Writer {
	if out == nil {
		out = os.Stdout
	}
	return &Writer{out: out}
}

// PrintLine は prefix を装飾なしのまま、text をスタイル付きで1行出力します
func (w *Writer) PrintLine(prefix, text string, style model.StyleToken) {
	fmt.Fprintln(w.out, prefix+Styled(text, style))
}

// Print は改行を付けずにそのまま書き出します
func (w *Writer) Print(text string) {
	fmt.Fprint(w.out, text)
}

// PrintBlank は空行を出力します
func (w *Writer) PrintBlank() {
	fmt.Fprintln(w.out)
}
