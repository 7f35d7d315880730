// RSS Bible は聖書通読計画をRSS 2.0フィードとして配信するサーバー。
//
// URLパスで計画種別・訳・開始日・1日あたりの章数を指定すると、
// 経過日数に応じた通読項目をBible Gatewayへのリンク付きで返す。
package main

import (
	"fmt"
	"os"

	"github.com/hitoshi/rssbible/internal/app"
)

func main() {
	if err := app.Run(os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
