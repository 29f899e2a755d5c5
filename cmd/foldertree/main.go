// Package main はアプリケーションのエントリーポイントを提供します
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Harikalatheeswaran/Folder-Tree-View/internal/domain/model"
	"github.com/Harikalatheeswaran/Folder-Tree-View/internal/gui"
	"github.com/Harikalatheeswaran/Folder-Tree-View/internal/infrastructure/config"
	"github.com/Harikalatheeswaran/Folder-Tree-View/internal/infrastructure/filesystem"
	"github.com/Harikalatheeswaran/Folder-Tree-View/internal/infrastructure/logging"
	"github.com/Harikalatheeswaran/Folder-Tree-View/internal/interface/console"
	"github.com/Harikalatheeswaran/Folder-Tree-View/internal/interface/ui"
	"github.com/Harikalatheeswaran/Folder-Tree-View/internal/usecase/export"
	"github.com/Harikalatheeswaran/Folder-Tree-View/internal/usecase/tree"
)

var stdin = bufio.NewReader(os.Stdin)

func main() {
	// ロガーの初期化（木の描画は標準出力を使うため、ログは標準エラーへ）
	logger := logging.NewJSONLogger(os.Stderr)

	// 設定の読み込み
	settings, err := config.Load(logger, "")
	if err != nil {
		logger.Log(logging.LevelError, "設定の読み込みに失敗", err)
		log.Fatalf("エラー: %v", err)
	}

	// ファイルシステムウォーカーの初期化
	walker := filesystem.NewWalker(logger)

	// 出力先コンソールの初期化
	writer := console.NewWriter(os.Stdout)

	// 表示対象フォルダの決定
	rootDir := pickRootDirectory(logger, writer, walker, settings.Picker)
	logger.Log(logging.LevelInfo, fmt.Sprintf("表示対象フォルダ: %s", rootDir), nil)

	// 木の描画
	renderer := tree.NewRenderer(walker, writer, logger, settings.Policy, settings.ShowIcons)
	counters := renderer.Render(rootDir)
	logger.Log(logging.LevelInfo,
		fmt.Sprintf("描画が完了しました（フォルダ: %d, ファイル: %d）", counters.FolderCount, counters.FileCount), nil)

	ctx := context.Background()

	// 集計の表示
	printSummary(ctx, logger, writer, rootDir, counters)

	// キーワード検索
	runSearch(ctx, logger, writer, rootDir)

	// 構成スナップショットの書き出し
	if settings.ExportEnabled {
		exportSnapshot(ctx, logger, rootDir, settings.ExportDir)
	}

	time.Sleep(closingDelay)
	writer.PrintLine("", closingArt, model.StyleLimeBold)
}

// pickRootDirectory は設定に応じたダイアログで表示対象フォルダを選びます。
// 選択できなかった場合はカレントディレクトリに落とします。
func pickRootDirectory(logger logging.Logger, writer *console.Writer, walker *filesystem.Walker, picker string) string {
	writer.Print("\n" + console.Styled("--->", model.StyleYellowBold) + " " +
		console.Styled("Press Enter to select the folder to display tree view...", model.StyleCyanBold) + "\n")
	waitForEnter()

	var selected string
	var err error
	switch picker {
	case config.PickerFyne:
		selected, err = gui.NewDirectorySelector(walker).SelectDirectory(ui.DefaultDialogTitle)
	case config.PickerNone:
		// ダイアログは使わず、このままカレントディレクトリに落とす
	default:
		selected, err = ui.NewDirectorySelector(walker).SelectDirectory(ui.DefaultDialogTitle)
	}

	if err == nil && selected != "" {
		return selected
	}
	if err != nil {
		logger.Log(logging.LevelWarn, "フォルダが選択されなかったためカレントディレクトリを表示します", err)
	}

	cwd, cwdErr := os.Getwd()
	if cwdErr != nil {
		logger.Log(logging.LevelError, "カレントディレクトリの取得に失敗", cwdErr)
		log.Fatalf("エラー: %v", cwdErr)
	}
	return cwd
}

// printSummary は数え上げの結果と合計サイズを表示します
func printSummary(ctx context.Context, logger logging.Logger, writer *console.Writer, rootDir string, counters model.RunCounters) {
	writer.Print("\n\n\n")
	writer.PrintLine("", "Summary:", model.StyleGreenBold)
	writer.PrintBlank()
	writer.Print(fmt.Sprintf("📂 %s folders\n", console.Styled(strconv.Itoa(counters.FolderCount), model.StyleCyan)))
	writer.Print(fmt.Sprintf("📄 %s files\n", console.Styled(strconv.Itoa(counters.FileCount), model.StyleMagenta)))
	writer.Print(fmt.Sprintf("📦 Total items: %s\n\n", console.Styled(strconv.Itoa(counters.Total()), model.StyleYellow)))

	// 合計サイズは木の描画とは別の走査で求める
	calc := filesystem.NewSizeCalculator(logger)
	totalBytes, err := calc.TotalSize(ctx, rootDir)
	if err != nil {
		logger.Log(logging.LevelWarn, "合計サイズの集計に失敗", err)
	}
	writer.Print(fmt.Sprintf("%s %s (%d bytes)\n\n\n",
		console.Styled("Total size:", model.StyleCyanBold),
		filesystem.HumanReadableSize(totalBytes),
		totalBytes))
}

// runSearch はキーワードを受け取り、名前が一致したファイル・フォルダを表示します。
// キーワードが空の場合は何もしません。
func runSearch(ctx context.Context, logger logging.Logger, writer *console.Writer, rootDir string) {
	writer.Print("\n" + console.Styled("--->", model.StyleYellowBold) + " " +
		console.Styled("Enter a keyword to 🔎 search in files/folders (leave empty to skip): ", model.StyleCyanBold) + "\n")
	writer.Print("🔎 KeyWord --->   ")

	keyword := readLine()
	if keyword == "" {
		return
	}

	writer.Print("\n" + console.Styled("Searching for:", model.StyleYellowBold) + " " +
		console.Styled(keyword, model.StyleCyan) + "\n\n")

	searcher := filesystem.NewSearcher(logger)
	matches, err := searcher.Search(ctx, rootDir, keyword)
	if err != nil {
		logger.Log(logging.LevelError, "検索に失敗", err)
		return
	}

	if len(matches) == 0 {
		writer.PrintLine("", "No matches found.", model.StyleRedBold)
		return
	}

	writer.Print(console.Styled(fmt.Sprintf("Found %d match(es):", len(matches)), model.StyleGreenBold) + "\n\n")
	for i, match := range matches {
		writer.Print(fmt.Sprintf("%d %s → %s\n\n", i+1,
			console.Styled(match.Name, model.StyleCyan), match.Path))
	}
	writer.Print("\n\n\n\n")
}

// exportSnapshot はフォルダ構成のJSONスナップショットを書き出します
func exportSnapshot(ctx context.Context, logger logging.Logger, rootDir, outputDir string) {
	generator := export.NewGenerator(logger)

	snapshot, err := generator.BuildSnapshot(ctx, rootDir)
	if err != nil {
		logger.Log(logging.LevelError, "スナップショットの構築に失敗", err)
		return
	}

	outputFile, outputPath, err := generator.CreateOutputFile(outputDir)
	if err != nil {
		logger.Log(logging.LevelError, "スナップショットの出力ファイル作成に失敗", err)
		return
	}
	defer outputFile.Close()

	if err := generator.WriteSnapshot(outputFile, snapshot); err != nil {
		logger.Log(logging.LevelError, "スナップショットの書き出しに失敗", err)
		return
	}

	logger.Log(logging.LevelInfo, fmt.Sprintf("スナップショットを書き出しました: %s", outputPath), nil)
}

func waitForEnter() {
	_, _ = stdin.ReadString('\n')
}

func readLine() string {
	line, _ := stdin.ReadString('\n')
	return strings.TrimSpace(line)
}
