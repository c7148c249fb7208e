package ui

// HelpLines describes the key bindings shared by every shell.
var HelpLines = []string{
	"PRESS 'N' FOR NO WIND",
	"'LEFT' OR 'RIGHT' TO CHANGE THE WIND DIRECTION",
	"'UP' OR 'DOWN' TO INCREASE OR DECREASE THE FIRE",
	"SPACE PAUSE  . STEP  R RESET  S RESEED  H HELP  ESC QUIT",
}
