package core

// Color is a semantic foreground role for a screen cell.
// The platform layer maps roles to concrete terminal colors.
type Color uint8

const (
	ColorDefault Color = iota
	ColorAccent        // headings, cursor, highlights
	ColorGood          // success, correct characters, placed pieces
	ColorBad           // misses, wrong answers, pursuing agents
	ColorWarn          // timers running over target, invulnerability
	ColorMuted         // hints and secondary text
	ColorWall          // maze walls and grid frames
	ColorPlayer        // the player token
	ColorExit          // the maze exit

	// Piece tags cycle through these.
	ColorPieceBlue
	ColorPieceGreen
	ColorPieceOrange
	ColorPieceMagenta
	ColorPieceLime
	ColorPieceCyan
	ColorPieceRed
	ColorPiecePurple
)
