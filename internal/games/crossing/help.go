package crossing

// HelpScreen is one page of the help carousel.
type HelpScreen struct {
	Title string
	Lines []string
}

// HelpScreens is browsed with left/right while help is open.
var HelpScreens = []HelpScreen{
	{
		Title: "How to play",
		Lines: []string{
			"Cross the stone lanes to the water.",
			"Arrows or WASD move one tile at a time.",
			"Every second away from the grass scores.",
			"Keep an eye on your lives and the clock.",
			"",
			"space  start / pause / resume",
			"h      this help      esc  back to demo",
			"m      sound on/off   tab  scoreboard",
		},
	},
	{
		Title: "Bugs",
		Lines: []string{
			"Bugs run left to right at random speeds.",
			"Their colour tells you their speed:",
			"",
			"green  slowest            20 points",
			"blue                      40 points",
			"yellow                    60 points",
			"purple                    80 points",
			"red    fastest           100 points",
		},
	},
	{
		Title: "Skins and zombies",
		Lines: []string{
			"shift+left/right changes your skin.",
			"Each skin matches one bug colour.",
			"",
			"Touch a bug of your colour and it turns",
			"into a zombie: you score its points and",
			"it fades away harmlessly.",
			"Touch any other bug and you lose a life.",
		},
	},
	{
		Title: "Charms",
		Lines: []string{
			"Bugs sometimes drop a coloured gem.",
			"Walk over it before it fades away.",
			"",
			"green 25  blue 50  yellow 75",
			"purple 100  red 150",
			"",
			"Gems blink out after a few seconds.",
		},
	},
}
