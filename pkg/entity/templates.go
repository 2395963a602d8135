package entity

// DefaultDailyTemplates is the recurring daily set generated for every grade.
var DefaultDailyTemplates = []DailyTaskTemplate{
	{
		ID:               "daily_preview",
		Title:            "Course preview",
		Description:      "Preview one or two of tomorrow's courses: skim the textbook or slides and mark what is unclear.",
		Exp:              40,
		EstimatedMinutes: 30,
	},
	{
		ID:               "daily_review",
		Title:            "Course review",
		Description:      "Review today's notes for one course and write down 3 to 5 points that are easy to confuse.",
		Exp:              40,
		EstimatedMinutes: 30,
	},
	{
		ID:               "daily_homework",
		Title:            "Finish homework",
		Description:      "Pick the course with the most pressure right now and finish today's homework or lab properly.",
		Exp:              60,
		EstimatedMinutes: 45,
	},
	{
		ID:               "daily_run",
		Title:            "Campus run / brisk walk",
		Description:      "Run or walk briskly on campus for at least 30 minutes. Warm up and stretch.",
		Exp:              50,
		EstimatedMinutes: 30,
	},
	{
		ID:               "daily_reading",
		Title:            "Read for 30 minutes",
		Description:      "Read a professional or non-fiction book for 30 minutes.",
		Exp:              30,
		EstimatedMinutes: 30,
	},
	{
		ID:               "daily_sleep",
		Title:            "Sleep on time",
		Description:      "Lights off before 23:30.",
		Exp:              20,
		EstimatedMinutes: 10,
	},
	{
		ID:               "daily_water",
		Title:            "Water and three meals",
		Description:      "Have three proper meals and enough water today, cut down on sugary drinks.",
		Exp:              20,
		EstimatedMinutes: 10,
	},
	{
		ID:               "daily_club",
		Title:            "Club / hobby",
		Description:      "Join a club activity or practice a hobby: band rehearsal, basketball, dance.",
		Exp:              40,
		EstimatedMinutes: 40,
	},
}
