package main

import "github.com/everettbu/chatsafe/internal/commands"

func main() {
	commands.Execute()
}
