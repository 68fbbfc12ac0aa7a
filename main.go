/*
Copyright © 2026 Darko Luketic <info@icod.de>
*/
package main

import "github.com/deicod/usdafas/cmd"

func main() {
	cmd.Execute()
}
