package console

import (
	"strings"
	"testing"

	"github.com/gookit/color"

	"github.com/Harikalatheeswaran/Folder-Tree-View/internal/domain/model"
)

func TestWriter_PrintLine(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		text   string
		style  model.StyleToken
		want   string
	}{
		{
			name:   "ルート行",
			prefix: "",
			text:   "photos",
			style:  model.StylePink,
			want:   "photos\n",
		},
		{
			name:   "接続記号付きの行",
			prefix: "│   ",
			text:   "└── x.py",
			style:  model.StyleBrightGreen,
			want:   "│   └── x.py\n",
		},
		{
			name:   "マーカー行",
			prefix: "│   ",
			text:   "[Access Denied]",
			style:  model.StyleRed,
			want:   "│   [Access Denied]\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf strings.Builder
			w := NewWriter(&buf)

			w.PrintLine(tt.prefix, tt.text, tt.style)

			// 端末によって装飾の有無が変わるため、エスケープ列を除いて比較する
			if got := color.ClearCode(buf.String()); got != tt.want {
				t.Errorf("PrintLine() = %q, want %q", got, tt.want)
			}
		})
	}
}

// 全てのスタイルトークンが解決でき、本文を変えないことを確認します
func TestStyledResolvesAllTokens(t *testing.T) {
	tokens := []model.StyleToken{
		model.StyleDefault,
		model.StylePink,
		model.StyleAquaBold,
		model.StyleBrightMagenta,
		model.StyleBrightCyan,
		model.StyleBrightGreen,
		model.StyleBrightYellow,
		model.StyleBrightBlue,
		model.StyleBrightWhite,
		model.StyleGreen,
		model.StyleYellow,
		model.StyleCyan,
		model.StyleBlue,
		model.StyleMagenta,
		model.StyleRed,
		model.StyleSoftWhite,
		model.StyleGreenBold,
		model.StyleYellowBold,
		model.StyleCyanBold,
		model.StyleRedBold,
		model.StyleLimeBold,
	}

	for _, token := range tokens {
		if _, ok := styleTable[token]; !ok {
			t.Errorf("スタイル %v が解決表にありません", token)
			continue
		}
		if got := color.ClearCode(Styled("sample", token)); got != "sample" {
			t.Errorf("Styled(%v) が本文を変えています: %q", token, got)
		}
	}
}

func TestStyledUnknownToken(t *testing.T) {
	if got := Styled("sample", model.StyleToken(999)); got != "sample" {
		t.Errorf("未知のトークンは本文をそのまま返すべき: got %q", got)
	}
}

func TestWriter_Print(t *testing.T) {
	var buf strings.Builder
	w := NewWriter(&buf)

	w.Print("件数: ")
	w.Print("3")
	w.PrintBlank()

	if got := buf.String(); got != "件数: 3\n" {
		t.Errorf("Print() の出力が不正: %q", got)
	}
}
