package model

import "fmt"

// StyleToken は表示スタイルを表す抽象的な識別子です。
// 端末エスケープへの解決は presentation 層（interface/console）が担い、
// 描画の中核はこのトークンだけを扱います。
type StyleToken int

const (
	// StyleDefault は拡張子が引けないファイルなどに使う標準の白です
	StyleDefault StyleToken = iota
	// StylePink はルート行専用のピンク (#FE83F8) です
	StylePink
	// StyleAquaBold は深さパレット先頭の太字アクア (#22FFC4) です
	StyleAquaBold
	StyleBrightMagenta
	StyleBrightCyan
	StyleBrightGreen
	StyleBrightYellow
	StyleBrightBlue
	StyleBrightWhite
	StyleGreen
	StyleYellow
	StyleCyan
	StyleBlue
	StyleMagenta
	StyleRed
	// StyleSoftWhite は .txt 用のやわらかい白 (#D8D4D4) です
	StyleSoftWhite
	StyleGreenBold
	// StyleYellowBold はプロンプト矢印の黄 (#FEFA02) です
	StyleYellowBold
	// StyleCyanBold はプロンプト本文のシアン (#00FFFF) です
	StyleCyanBold
	StyleRedBold
	// StyleLimeBold は終了バナーの黄緑 (#6BFF21) です
	StyleLimeBold
)

var styleNames = map[StyleToken]string{
	StyleDefault:       "default",
	StylePink:          "pink",
	StyleAquaBold:      "aqua_bold",
	StyleBrightMagenta: "bright_magenta",
	StyleBrightCyan:    "bright_cyan",
	StyleBrightGreen:   "bright_green",
	StyleBrightYellow:  "bright_yellow",
	StyleBrightBlue:    "bright_blue",
	StyleBrightWhite:   "bright_white",
	StyleGreen:         "green",
	StyleYellow:        "yellow",
	StyleCyan:          "cyan",
	StyleBlue:          "blue",
	StyleMagenta:       "magenta",
	StyleRed:           "red",
	StyleSoftWhite:     "soft_white",
	StyleGreenBold:     "green_bold",
	StyleYellowBold:    "yellow_bold",
	StyleCyanBold:      "cyan_bold",
	StyleRedBold:       "red_bold",
	StyleLimeBold:      "lime_bold",
}

var stylesByName = func() map[string]StyleToken {
	m := make(map[string]StyleToken, len(styleNames))
	for token, name := range styleNames {
		m[name] = token
	}
	return m
}()

// String はスタイル名（設定ファイルで使う表記）を返します
func (t StyleToken) String() string {
	if name, ok := styleNames[t]; ok {
		return name
	}
	return "default"
}

// ParseStyleToken はスタイル名から StyleToken を引きます
func ParseStyleToken(name string) (StyleToken, error) {
	if token, ok := stylesByName[name]; ok {
		return token, nil
	}
	return StyleDefault, fmt.Errorf("不明なスタイル名です: %s", name)
}

// ColorPolicy は木の配色を定める不変の設定です。
// 起動時に一度だけ組み立てられ、実行中に変更されることはありません。
type ColorPolicy struct {
	// RootStyle はルート行専用のスタイルです（深さパレットの循環には含まれません）
	RootStyle StyleToken
	// DepthStyles はディレクトリ用のスタイル列で、深さに応じて循環します
	DepthStyles []StyleToken
	// FileStyles は小文字の拡張子（ドット付き）からスタイルへの対応表です
	FileStyles map[string]StyleToken
	// DefaultStyle は FileStyles で引けないファイルに使います
	DefaultStyle StyleToken
	// ErrorStyle は [Access Denied] などの失敗マーカーに使います
	ErrorStyle StyleToken
}

// DefaultColorPolicy は組み込みの既定の配色を返します
func DefaultColorPolicy() ColorPolicy {
	return ColorPolicy{
		RootStyle: StylePink,
		DepthStyles: []StyleToken{
			StyleAquaBold,
			StyleBrightMagenta,
			StyleBrightCyan,
			StyleBrightGreen,
			StyleBrightYellow,
			StyleBrightBlue,
		},
		FileStyles: map[string]StyleToken{
			// コード
			".py":   StyleBrightGreen,
			".js":   StyleBrightYellow,
			".html": StyleBrightMagenta,
			".css":  StyleCyan,
			".java": StyleBrightBlue,
			".c":    StyleBlue,
			".cpp":  StyleBlue,
			".sh":   StyleGreen,
			// 文書
			".txt":  StyleSoftWhite,
			".md":   StyleBrightWhite,
			".pdf":  StyleRed,
			".doc":  StyleBrightBlue,
			".docx": StyleBrightBlue,
			".xls":  StyleBrightGreen,
			".xlsx": StyleBrightGreen,
			// 画像
			".png":  StyleMagenta,
			".jpg":  StyleBrightMagenta,
			".jpeg": StyleBrightMagenta,
			".gif":  StyleBrightYellow,
			// ログ
			".log": StyleYellow,
			".csv": StyleCyan,
		},
		DefaultStyle: StyleDefault,
		ErrorStyle:   StyleRed,
	}
}
