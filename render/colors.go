package render

// Scene palette
var (
	RgbBackground = RGB{18, 12, 10}  // Temple dusk
	RgbTable      = RGB{92, 58, 34}  // Lacquered wood
	RgbTableEdge  = RGB{140, 92, 52} // Table lip highlight
	RgbFire       = RGB{255, 119, 51}

	RgbBlockFace = RGB{196, 38, 28}  // Flat face, red lacquer
	RgbBlockBack = RGB{122, 30, 20}  // Rounded back
	RgbBlockEdge = RGB{168, 112, 64} // Exposed wood rim
)

// Overlay palette
var (
	RgbText        = RGB{232, 222, 204}
	RgbTextDim     = RGB{150, 140, 128}
	RgbCaption     = RGB{210, 170, 110}
	RgbStreakOn    = RGB{255, 204, 77}
	RgbStreakOff   = RGB{80, 70, 60}
	RgbToastBg     = RGB{48, 36, 30}
	RgbToastTitle  = RGB{255, 140, 100}
	RgbMilestone   = RGB{255, 215, 0}
	RgbStatusBar   = RGB{36, 28, 24}
	RgbStatusText  = RGB{190, 180, 168}
	RgbPromptLabel = RGB{135, 206, 250}
)
