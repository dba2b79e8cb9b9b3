package main

import "github.com/mouthful-foods/vendor-mailer/cmd"

func main() {
	cmd.Execute()
}
