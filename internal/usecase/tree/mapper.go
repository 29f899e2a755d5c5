// Package tree はディレクトリ構造を木として描画する機能を提供します
package tree

import "github.com/Harikalatheeswaran/Folder-Tree-View/internal/domain/model"

// StyleFor は1つのエントリに適用するスタイルを決める純粋関数です。
// depth はエントリ自身の深さで、ルート直下のエントリは 1 です。
// ディレクトリは深さパレットを循環し、ファイル（シンボリックリンクを含む）は
// 拡張子の対応表で引き、引けなければ既定のスタイルに落ちます。
// ルート行だけはこの循環の外にあり、呼び出し側が ColorPolicy.RootStyle を使います。
func StyleFor(policy model.ColorPolicy, entry model.DirectoryEntry, depth int) model.StyleToken {
	if entry.IsDir {
		if len(policy.DepthStyles) == 0 {
			return policy.DefaultStyle
		}
		return policy.DepthStyles[depth%len(policy.DepthStyles)]
	}
	if style, ok := policy.FileStyles[entry.Extension()]; ok {
		return style
	}
	return policy.DefaultStyle
}
