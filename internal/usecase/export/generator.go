// Package export はフォルダ構成のスナップショット出力機能を提供します
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/Harikalatheeswaran/Folder-Tree-View/internal/infrastructure/logging"
)

const (
	OutputFilePrefix = "folder_structure_"
	OutputFileSuffix = ".json"
	TimestampLayout  = "20060102_150405"

	// DefaultProbeSize は読み取り確認で読む最大バイト数です
	DefaultProbeSize = 1024
)

// Snapshot は1フォルダ分の構成です。ファイル名の一覧と、
// サブフォルダ名から同じ構造への対応表を持ちます。
type Snapshot struct {
	Files      []string             `json:"files"`
	Subfolders map[string]*Snapshot `json:"subfolders"`
}

// Generator はスナップショットの構築と書き出しを行うための構造体です
type Generator struct {
	logger    logging.Logger
	probeSize int
}

// NewGenerator は新しい Generator インスタンスを作成します
func NewGenerator(logger logging.Logger) *Generator {
	return &Generator{
		logger:    logger,
		probeSize: DefaultProbeSize,
	}
}

// BuildSnapshot は dir 配下の構成を再帰的に収集します。
// シンボリックリンクは循環を避けるため含めません。読めないファイルは
// 黙って省き、読めないフォルダは WARN ログを残して空のまま記録します。
// 収集順は名前の小文字比較の昇順です。
func (g *Generator) BuildSnapshot(ctx context.Context, dir string) (*Snapshot, error) {
	snapshot := &Snapshot{
		Files:      []string{},
		Subfolders: map[string]*Snapshot{},
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		g.logger.Log(logging.LevelWarn, fmt.Sprintf("ディレクトリ '%s' を読み取れないため空として記録", dir), err)
		return snapshot, nil
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return strings.ToLower(entries[i].Name()) < strings.ToLower(entries[j].Name())
	})

	for _, entry := range entries {
		if entry.Type()&os.ModeSymlink != 0 {
			continue
		}

		if entry.IsDir() {
			child, err := g.BuildSnapshot(ctx, filepath.Join(dir, entry.Name()))
			if err != nil {
				return nil, err
			}
			snapshot.Subfolders[entry.Name()] = child
			continue
		}

		if entry.Type().IsRegular() && g.isReadable(filepath.Join(dir, entry.Name())) {
			snapshot.Files = append(snapshot.Files, entry.Name())
		}
	}

	return snapshot, nil
}

// isReadable はファイルの先頭を少しだけ読んで読み取り可能か確かめます。
// 全体は読み込みません。
func (g *Generator) isReadable(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	buf := make([]byte, g.probeSize)
	if _, err := f.Read(buf); err != nil && err != io.EOF {
		return false
	}
	return true
}

// CreateOutputFile はタイムスタンプ付きの出力ファイルを作成します
func (g *Generator) CreateOutputFile(outputDir string) (*os.File, string, error) {
	timestamp := time.Now().Format(TimestampLayout)
	outputPath := filepath.Join(outputDir, fmt.Sprintf("%s%s%s", OutputFilePrefix, timestamp, OutputFileSuffix))

	outputFile, err := os.Create(outputPath)
	if err != nil {
		return nil, "", fmt.Errorf("出力ファイルの作成に失敗しました: %w", err)
	}

	return outputFile, outputPath, nil
}

// WriteSnapshot はスナップショットを2スペースインデントのJSONで書き出します
func (g *Generator) WriteSnapshot(writer io.Writer, snapshot *Snapshot) error {
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(snapshot); err != nil {
		return fmt.Errorf("スナップショットのJSONエンコードに失敗しました: %w", err)
	}
	return nil
}

// LoadSnapshot は書き出したスナップショットファイルを読み戻します
func (g *Generator) LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("スナップショットの読み込みに失敗しました: %w", err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("スナップショットのJSON解析に失敗しました: %w", err)
	}

	return &snapshot, nil
}
