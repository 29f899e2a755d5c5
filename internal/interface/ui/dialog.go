// Package ui はユーザーインターフェース機能を提供します
package ui

import (
	"fmt"

	"github.com/sqweek/dialog"

	"github.com/Harikalatheeswaran/Folder-Tree-View/internal/infrastructure/filesystem"
)

// DefaultDialogTitle は特に指定がない場合のダイアログタイトルです
const DefaultDialogTitle = "表示するフォルダを選択"

// DirectorySelector はOS標準のダイアログでフォルダ選択を行う構造体です
type DirectorySelector struct {
	// validator はディレクトリパスの検証を行うインターフェースです
	validator filesystem.DirectoryValidator
}

// NewDirectorySelector は新しい DirectorySelector インスタンスを作成します
func NewDirectorySelector(validator filesystem.DirectoryValidator) *DirectorySelector {
	return &DirectorySelector{validator: validator}
}

// SelectDirectory はダイアログを表示して表示対象のフォルダを選択します
func (d *DirectorySelector) SelectDirectory(title string) (string, error) {
	selectedDir, err := dialog.Directory().Title(title).Browse()
	if err != nil {
		return "", fmt.Errorf("フォルダの選択がキャンセルまたはエラーになりました: %w", err)
	}

	if err := d.validator.ValidateDirectoryPath(selectedDir); err != nil {
		return "", fmt.Errorf("無効なフォルダが選択されました: %w", err)
	}

	return selectedDir, nil
}
