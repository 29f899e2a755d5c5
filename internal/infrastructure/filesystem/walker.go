// Package filesystem はファイルシステム操作を提供します
package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Harikalatheeswaran/Folder-Tree-View/internal/domain/model"
	"github.com/Harikalatheeswaran/Folder-Tree-View/internal/infrastructure/logging"
)

// DirectoryValidator はディレクトリの検証機能を提供するインターフェースです
type DirectoryValidator interface {
	ValidateDirectoryPath(path string) error
}

// Walker はディレクトリ直下のエントリを列挙するための構造体です
type Walker struct {
	logger logging.Logger
}

// NewWalker は新しい Walker インスタンスを作成します
func NewWalker(logger logging.Logger) *Walker {
	return &Walker{logger: logger}
}

// ValidateDirectoryPath はパスが安全で有効なディレクトリであることを確認します
func (w *Walker) ValidateDirectoryPath(path string) error {
	if path == "" {
		return fmt.Errorf("ディレクトリパスが指定されていません")
	}

	fileInfo, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("ディレクトリが存在しません: %w", err)
	}

	if !fileInfo.IsDir() {
		return fmt.Errorf("指定されたパスはディレクトリではありません")
	}

	if !filepath.IsAbs(path) {
		return fmt.Errorf("絶対パスで指定してください")
	}

	if strings.ContainsAny(path, "<>|?*") {
		return fmt.Errorf("パスに不正な文字が含まれています")
	}

	return nil
}

// ListEntries は dir 直下のエントリを表示順で返します。
// ディレクトリが先、同種どうしは名前の小文字比較の昇順です。
// シンボリックリンクは辿らず、リンクであることと参照先だけを記録します。
func (w *Walker) ListEntries(dir string) ([]model.DirectoryEntry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("ディレクトリ '%s' の読み取りに失敗しました: %w", dir, err)
	}

	entries := make([]model.DirectoryEntry, 0, len(dirEntries))
	for _, de := range dirEntries {
		entry := model.DirectoryEntry{
			Name:  de.Name(),
			Path:  filepath.Join(dir, de.Name()),
			IsDir: de.IsDir(),
		}
		if de.Type()&os.ModeSymlink != 0 {
			entry.IsSymlink = true
			// 参照先が取れない場合は注記なしで表示します
			if target, err := os.Readlink(entry.Path); err == nil {
				entry.LinkTarget = target
			} else {
				w.logger.Log(logging.LevelWarn,
					fmt.Sprintf("リンク '%s' の参照先を取得できません", entry.Path), err)
			}
		}
		entries = append(entries, entry)
	}

	// 小文字比較が同値の場合は os.ReadDir の返す並び（バイト順）を保ちます
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}
		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})

	return entries, nil
}
