package filesystem

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/Harikalatheeswaran/Folder-Tree-View/internal/infrastructure/logging"
)

// Match はキーワード検索の1件分の結果です
type Match struct {
	// Name は一致したエントリのベース名です
	Name string
	// Path は一致したエントリの完全なパスです
	Path string
}

// Searcher はディレクトリ配下の名前検索を行うための構造体です
type Searcher struct {
	logger logging.Logger
}

// NewSearcher は新しい Searcher インスタンスを作成します
func NewSearcher(logger logging.Logger) *Searcher {
	return &Searcher{logger: logger}
}

// Search は root 配下からキーワードを名前に含むファイル・フォルダを探します。
// 比較は大文字小文字を区別しません。root 自身は対象に含めません。
// 読めない場所は WARN ログを残してスキップし、走査自体は続行します。
func (s *Searcher) Search(ctx context.Context, root, keyword string) ([]Match, error) {
	needle := strings.ToLower(keyword)
	var matches []Match

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			s.logger.Log(logging.LevelWarn, fmt.Sprintf("パス '%s' の走査中にエラー発生", path), err)
			return nil
		}
		if path == root {
			return nil
		}
		if strings.Contains(strings.ToLower(d.Name()), needle) {
			matches = append(matches, Match{Name: d.Name(), Path: path})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("検索の走査に失敗しました: %w", err)
	}

	return matches, nil
}
