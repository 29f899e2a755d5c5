package export

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

type mockLogger struct {
	logs []struct {
		level   string
		message string
		err     error
	}
}

func (m *mockLogger) Log(level, message string, err error) {
	m.logs = append(m.logs, struct {
		level   string
		message string
		err     error
	}{level, message, err})
}

func TestGenerator_CreateOutputFile(t *testing.T) {
	generator := NewGenerator(&mockLogger{})

	tempDir := t.TempDir()

	file, path, err := generator.CreateOutputFile(tempDir)
	if err != nil {
		t.Fatalf("CreateOutputFile() error = %v", err)
	}
	defer file.Close()

	if !strings.HasPrefix(filepath.Base(path), "folder_structure_") {
		t.Errorf("出力ファイル名が不正: got %v", filepath.Base(path))
	}

	if !strings.HasSuffix(path, ".json") {
		t.Errorf("出力ファイルの拡張子が不正: got %v", filepath.Base(path))
	}
}

func TestGenerator_BuildSnapshot(t *testing.T) {
	generator := NewGenerator(&mockLogger{})

	tempDir := t.TempDir()

	// 並び順の検証用に大文字小文字を混ぜる
	for _, file := range []string{"b.TXT", "a.txt", "C.md"} {
		if err := os.WriteFile(filepath.Join(tempDir, file), []byte("x"), 0644); err != nil {
			t.Fatalf("テストファイルの作成に失敗: %v", err)
		}
	}
	subDir := filepath.Join(tempDir, "Sub")
	if err := os.Mkdir(subDir, 0755); err != nil {
		t.Fatalf("テストディレクトリの作成に失敗: %v", err)
	}
	if err := os.WriteFile(filepath.Join(subDir, "nested.log"), []byte("x"), 0644); err != nil {
		t.Fatalf("テストファイルの作成に失敗: %v", err)
	}

	snapshot, err := generator.BuildSnapshot(context.Background(), tempDir)
	if err != nil {
		t.Fatalf("BuildSnapshot() error = %v", err)
	}

	wantFiles := []string{"a.txt", "b.TXT", "C.md"}
	if !reflect.DeepEqual(snapshot.Files, wantFiles) {
		t.Errorf("Files = %v, want %v", snapshot.Files, wantFiles)
	}

	sub, ok := snapshot.Subfolders["Sub"]
	if !ok {
		t.Fatal("Sub がサブフォルダに含まれていません")
	}
	if !reflect.DeepEqual(sub.Files, []string{"nested.log"}) {
		t.Errorf("Sub.Files = %v, want [nested.log]", sub.Files)
	}
	if len(sub.Subfolders) != 0 {
		t.Errorf("Sub.Subfolders = %v, want empty", sub.Subfolders)
	}
}

// シンボリックリンクはファイル・フォルダのいずれにも記録しないことを確認します
func TestGenerator_BuildSnapshotSkipsSymlinks(t *testing.T) {
	generator := NewGenerator(&mockLogger{})

	tempDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tempDir, "real.txt"), []byte("x"), 0644); err != nil {
		t.Fatalf("テストファイルの作成に失敗: %v", err)
	}
	if err := os.Symlink(filepath.Join(tempDir, "real.txt"), filepath.Join(tempDir, "link.txt")); err != nil {
		t.Skipf("シンボリックリンクを作成できない環境のためスキップ: %v", err)
	}

	snapshot, err := generator.BuildSnapshot(context.Background(), tempDir)
	if err != nil {
		t.Fatalf("BuildSnapshot() error = %v", err)
	}

	if !reflect.DeepEqual(snapshot.Files, []string{"real.txt"}) {
		t.Errorf("Files = %v, want [real.txt]", snapshot.Files)
	}
	if len(snapshot.Subfolders) != 0 {
		t.Errorf("Subfolders = %v, want empty", snapshot.Subfolders)
	}
}

// 読み取れないディレクトリは空のスナップショットとして記録されることを確認します
func TestGenerator_BuildSnapshotUnreadableDir(t *testing.T) {
	logger := &mockLogger{}
	generator := NewGenerator(logger)

	snapshot, err := generator.BuildSnapshot(context.Background(), filepath.Join(t.TempDir(), "notexist"))
	if err != nil {
		t.Fatalf("BuildSnapshot() error = %v", err)
	}

	if len(snapshot.Files) != 0 || len(snapshot.Subfolders) != 0 {
		t.Errorf("空のスナップショットであるべき: %+v", snapshot)
	}

	var foundWarn bool
	for _, log := range logger.logs {
		if log.level == "WARN" {
			foundWarn = true
			break
		}
	}
	if !foundWarn {
		t.Error("読み取り失敗のWARNログが出力されていません")
	}
}

func TestGenerator_BuildSnapshotCanceled(t *testing.T) {
	generator := NewGenerator(&mockLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := generator.BuildSnapshot(ctx, t.TempDir())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("BuildSnapshot() error = %v, want context.Canceled", err)
	}
}

// 書き出したスナップショットを読み戻すと同じ内容になることを確認します
func TestGenerator_WriteAndLoadSnapshot(t *testing.T) {
	generator := NewGenerator(&mockLogger{})

	sourceDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(sourceDir, "main.go"), []byte("package main"), 0644); err != nil {
		t.Fatalf("テストファイルの作成に失敗: %v", err)
	}
	if err := os.MkdirAll(filepath.Join(sourceDir, "docs", "api"), 0755); err != nil {
		t.Fatalf("テストディレクトリの作成に失敗: %v", err)
	}

	built, err := generator.BuildSnapshot(context.Background(), sourceDir)
	if err != nil {
		t.Fatalf("BuildSnapshot() error = %v", err)
	}

	outputDir := t.TempDir()
	file, path, err := generator.CreateOutputFile(outputDir)
	if err != nil {
		t.Fatalf("CreateOutputFile() error = %v", err)
	}
	if err := generator.WriteSnapshot(file, built); err != nil {
		t.Fatalf("WriteSnapshot() error = %v", err)
	}
	if err := file.Close(); err != nil {
		t.Fatalf("ファイルのクローズに失敗: %v", err)
	}

	// インデント付きで書き出されている
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("出力ファイルの読み込みに失敗: %v", err)
	}
	if !strings.Contains(string(data), "  \"files\"") {
		t.Errorf("2スペースインデントで出力されていません:\n%s", data)
	}

	loaded, err := generator.LoadSnapshot(path)
	if err != nil {
		t.Fatalf("LoadSnapshot() error = %v", err)
	}
	if !reflect.DeepEqual(loaded, built) {
		t.Errorf("読み戻した内容が一致しません:\ngot  %+v\nwant %+v", loaded, built)
	}
}

func TestGenerator_LoadSnapshotErrors(t *testing.T) {
	generator := NewGenerator(&mockLogger{})

	tests := []struct {
		name  string
		setup func(t *testing.T) string
	}{
		{
			name: "存在しないファイル",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "notexist.json")
			},
		},
		{
			name: "壊れたJSON",
			setup: func(t *testing.T) string {
				path := filepath.Join(t.TempDir(), "broken.json")
				if err := os.WriteFile(path, []byte("{broken"), 0644); err != nil {
					t.Fatalf("テストファイルの作成に失敗: %v", err)
				}
				return path
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := generator.LoadSnapshot(tt.setup(t)); err == nil {
				t.Error("エラーを返すべきです")
			}
		})
	}
}
