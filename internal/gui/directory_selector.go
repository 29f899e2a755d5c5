// Package gui はGUIを提供します
package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"
)

// ウィンドウの既定サイズ
const (
	DefaultWindowWidth  = 800
	DefaultWindowHeight = 600
)

// DirectoryValidator は、ディレクトリパスの検証を行うインターフェース
type DirectoryValidator interface {
	ValidateDirectoryPath(path string) error
}

// DirectorySelector は、Fyneのダイアログでフォルダ選択を行う構造体
type DirectorySelector struct {
	validator DirectoryValidator
}

// NewDirectorySelector は、DirectorySelectorの新しいインスタンスを作成します
func NewDirectorySelector(validator DirectoryValidator) *DirectorySelector {
	return &DirectorySelector{
		validator: validator,
	}
}

// SelectDirectory は、Fyneダイアログで表示対象のフォルダを1つ選択し、
// 選択されたパスまたはエラーを返します
func (s *DirectorySelector) SelectDirectory(title string) (string, error) {
	done := make(chan struct{})
	var result struct {
		path string
		err  error
	}

	a := app.New()
	w := a.NewWindow(title)
	w.Resize(fyne.NewSize(DefaultWindowWidth, DefaultWindowHeight))

	// ダイアログを作成して表示
	d := dialog.NewFolderOpen(func(selectedURI fyne.ListableURI, err error) {
		// コールバック: ユーザーがフォルダを選択した結果を受け取る
		if err != nil {
			result.err = fmt.Errorf("フォルダ選択エラー: %w", err)
			close(done)
			return
		}
		if selectedURI == nil {
			result.err = fmt.Errorf("ユーザーがキャンセルしました")
			close(done)
			return
		}
		path := selectedURI.Path()
		if err := s.validator.ValidateDirectoryPath(path); err != nil {
			result.err = fmt.Errorf("パス検証エラー: %w", err)
			close(done)
			return
		}
		result.path = path
		close(done)
	}, w)
	d.Show()
	w.Show()

	// イベントループ内で待機するため、a.Run() を実行
	go func() {
		<-done
		a.Quit()
	}()
	a.Run()
	return result.path, result.err
}
