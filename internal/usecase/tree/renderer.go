package tree

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/Harikalatheeswaran/Folder-Tree-View/internal/domain/model"
	"github.com/Harikalatheeswaran/Folder-Tree-View/internal/infrastructure/logging"
)

// 読み取れなかったディレクトリの位置に表示するマーカー
const (
	// AccessDeniedMarker は権限不足で読み取れない場合に表示します
	AccessDeniedMarker = "[Access Denied]"
	// UnavailableMarker は権限以外の理由で読み取れない場合に表示します
	UnavailableMarker = "[Unavailable]"
)

// 接続記号とインデント単位。いずれも4文字幅で揃えています。
const (
	connectorBranch = "├── "
	connectorLast   = "└── "
	indentBranch    = "│   "
	indentLast      = "    "
)

// アイコン表示を有効にした場合に使う絵文字
const (
	iconRoot   = "📁 "
	iconFolder = "📂 "
	iconFile   = "📄 "
)

// DirectoryLister はディレクトリ直下のエントリを表示順で返すインターフェースです
type DirectoryLister interface {
	ListEntries(dir string) ([]model.DirectoryEntry, error)
}

// LinePrinter はスタイル付きの1行を出力するインターフェースです。
// prefix はスタイルなしで、style は text にだけ適用されます。
type LinePrinter interface {
	PrintLine(prefix, text string, style model.StyleToken)
}

// Renderer はディレクトリ構造を深さ優先で描画するための構造体です
type Renderer struct {
	lister    DirectoryLister
	printer   LinePrinter
	logger    logging.Logger
	policy    model.ColorPolicy
	showIcons bool
}

// NewRenderer は新しい Renderer インスタンスを作成します
func NewRenderer(lister DirectoryLister, printer LinePrinter, logger logging.Logger, policy model.ColorPolicy, showIcons bool) *Renderer {
	return &Renderer{
		lister:    lister,
		printer:   printer,
		logger:    logger,
		policy:    policy,
		showIcons: showIcons,
	}
}

// Render は rootPath を頂点とする木を描画し、数え上げの結果を返します。
// カウンタは呼び出しごとに0から数え直すため、変化のないディレクトリへの
// 再実行は同じ出力と同じカウンタになります。ルート行自体は数えません。
func (r *Renderer) Render(rootPath string) model.RunCounters {
	var counters model.RunCounters

	label := filepath.Base(rootPath)
	if r.showIcons {
		label = iconRoot + label
	}
	r.printer.PrintLine("", label, r.policy.RootStyle)

	r.renderChildren(rootPath, "", 0, &counters)
	return counters
}

// renderChildren は dir 直下のエントリを描画します。depth は dir 自身の深さです。
// 読み取りに失敗した枝はマーカー1行に変えて打ち切り、失敗をその枝の中に
// 閉じ込めます。兄弟や祖先の描画はそのまま続行します。
func (r *Renderer) renderChildren(dir, prefix string, depth int, counters *model.RunCounters) {
	entries, err := r.lister.ListEntries(dir)
	if err != nil {
		marker := UnavailableMarker
		if errors.Is(err, fs.ErrPermission) {
			marker = AccessDeniedMarker
		}
		r.printer.PrintLine(prefix, marker, r.policy.ErrorStyle)
		r.logger.Log(logging.LevelWarn, fmt.Sprintf("ディレクトリ '%s' を読み取れません", dir), err)
		return
	}

	for i, entry := range entries {
		connector := connectorBranch
		indent := indentBranch
		if i == len(entries)-1 {
			connector = connectorLast
			indent = indentLast
		}

		// 数え上げは描画の瞬間に1回だけ行います
		if entry.IsDir {
			counters.FolderCount++
		} else {
			counters.FileCount++
		}

		// 接続記号はエントリ本体と同じスタイルで塗り、祖先のインデントは無色のままにします
		style := StyleFor(r.policy, entry, depth+1)
		r.printer.PrintLine(prefix, connector+r.entryLabel(entry), style)

		// シンボリックリンクには降りません
		if entry.IsDir && !entry.IsSymlink {
			r.renderChildren(entry.Path, prefix+indent, depth+1, counters)
		}
	}
}

// entryLabel は1エントリ分の表示文字列を組み立てます
func (r *Renderer) entryLabel(entry model.DirectoryEntry) string {
	var b strings.Builder
	if r.showIcons {
		if entry.IsDir {
			b.WriteString(iconFolder)
		} else {
			b.WriteString(iconFile)
		}
	}
	b.WriteString(entry.Name)
	if entry.IsDir {
		b.WriteString("/")
	}
	if entry.IsSymlink && entry.LinkTarget != "" {
		b.WriteString(" -> ")
		b.WriteString(entry.LinkTarget)
	}
	return b.String()
}
