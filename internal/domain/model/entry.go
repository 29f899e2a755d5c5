// package model はドメインモデルを定義します
package model

import (
	"path/filepath"
	"strings"
)

// DirectoryEntry はディレクトリ一覧取得で得られた直下の要素
// （ファイル・ディレクトリ・シンボリックリンク）を表します
type DirectoryEntry struct {
	// Name は要素のベース名を表します
	Name string
	// Path は要素の完全パス（再帰やサイズ取得に使用）を表します
	Path string
	// IsDir はディレクトリであるかどうかを示します
	IsDir bool
	// IsSymlink はシンボリックリンクであるかどうかを示します（リンク先へは降りません）
	IsSymlink bool
	// LinkTarget はシンボリックリンクのリンク先（取得できた場合のみ）を保持します
	LinkTarget string
}

// Extension はベース名の小文字化した拡張子を返します。
// 拡張子を持たない名前、および先頭のドット以外にドットを含まない名前は空文字を返します。
func (e DirectoryEntry) Extension() string {
	ext := filepath.Ext(e.Name)
	if ext == "" || ext == e.Name {
		return ""
	}
	return strings.ToLower(ext)
}

// RunCounters は1回の描画で訪問した要素の件数を集計します。
// 描画呼び出しごとに新しく作られ、描画中は増えるだけです。
type RunCounters struct {
	// FolderCount は訪問したフォルダ数を表します
	FolderCount int
	// FileCount は訪問したファイル数（シンボリックリンクを含む）を表します
	FileCount int
}

// Total は訪問した要素の総数を返します
func (c RunCounters) Total() int {
	return c.FolderCount + c.FileCount
}
