package chart

func darkScales() map[string]Scale {
	return map[string]Scale{
		"x": {Ticks: ColorOption{Color: "#fff"}, Grid: ColorOption{Color: "#333"}},
		"y": {Ticks: ColorOption{Color: "#fff"}, Grid: ColorOption{Color: "#333"}},
	}
}

var whiteLegend = Plugins{Legend: Legend{Labels: ColorOption{Color: "#fff"}}}

func UsersBar() Config {
	return Config{
		Type:   Bar,
		Labels: []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
		Datasets: []Dataset{{
			Label:           "Users",
			Data:            []float64{120, 190, 300, 500, 200, 300},
			BackgroundColor: Colors{"#f5b041"},
		}},
		Options: Options{Responsive: true, Scales: darkScales(), Plugins: whiteLegend},
	}
}

func UserStatusDoughnut() Config {
	return Config{
		Type:   Doughnut,
		Labels: []string{"Active", "Inactive"},
		Datasets: []Dataset{{
			Label:           "User Status",
			Data:            []float64{70, 30},
			BackgroundColor: Colors{"#f5b041", "#444"},
		}},
		Options: Options{Responsive: true, Plugins: whiteLegend},
	}
}

func WeeklyUsersBar() Config {
	return Config{
		Type:   Bar,
		Labels: []string{"Mon", "Tue", "Wed", "Thu", "Fri"},
		Datasets: []Dataset{{
			Label:           "Weekly users",
			Data:            []float64{100, 200, 300, 250, 400},
			BackgroundColor: Colors{"#ffa500"},
		}},
		Options: Options{Scales: darkScales(), Plugins: whiteLegend},
	}
}

func ActivityPie() Config {
	return Config{
		Type:   Pie,
		Labels: []string{"Active", "Inactive"},
		Datasets: []Dataset{{
			Label:           "Activity",
			Data:            []float64{832, 268},
			BackgroundColor: Colors{"#ffa500", "#444"},
		}},
		Options: Options{Plugins: whiteLegend},
	}
}

// Samples are the charts shown when no chart file is configured.
func Samples() []Config {
	return []Config{UsersBar(), UserStatusDoughnut(), WeeklyUsersBar(), ActivityPie()}
}
