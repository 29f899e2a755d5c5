package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/docker/go-units"

	"github.com/Harikalatheeswaran/Folder-Tree-View/internal/infrastructure/logging"
)

// SizeCalculator はディレクトリ配下の合計サイズを計算するための構造体です
type SizeCalculator struct {
	logger logging.Logger
}

// NewSizeCalculator は新しい SizeCalculator インスタンスを作成します
func NewSizeCalculator(logger logging.Logger) *SizeCalculator {
	return &SizeCalculator{logger: logger}
}

// TotalSize は root 配下にある通常ファイルのサイズ合計をバイト単位で返します。
// 読めない場所は WARN ログを残してスキップし、走査自体は続行します。
// この走査は表示用の木とは独立しており、表示されなかった場所も集計対象です。
func (c *SizeCalculator) TotalSize(ctx context.Context, root string) (int64, error) {
	var total int64

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			c.logger.Log(logging.LevelWarn, fmt.Sprintf("パス '%s' の走査中にエラー発生", path), err)
			return nil
		}
		if info.IsDir() {
			return nil
		}

		// シンボリックリンクは参照先を確認し、通常ファイルのみ加算します。
		// 参照先が壊れているリンクは集計しません。
		fi, err := os.Stat(path)
		if err != nil {
			return nil
		}
		if fi.Mode().IsRegular() {
			total += fi.Size()
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("サイズ集計の走査に失敗しました: %w", err)
	}

	return total, nil
}

var sizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

// HumanReadableSize はバイト数を 1024 区切りの単位表記（小数2桁）に変換します
func HumanReadableSize(bytes int64) string {
	return units.CustomSize("%.2f %s", float64(bytes), 1024.0, sizeUnits)
}
