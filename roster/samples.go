package roster

// MLB20 returns a 20-player sample roster: ten right-handed and ten
// left-handed batters with realistic averages. A fresh slice is returned on
// every call.
func MLB20() Roster {
	return Roster{
		{Name: "Mike Trout", Rating: 0.340, Hand: Right},
		{Name: "Aaron Judge", Rating: 0.315, Hand: Right},
		{Name: "Mookie Betts", Rating: 0.305, Hand: Right},
		{Name: "José Ramírez", Rating: 0.295, Hand: Right},
		{Name: "Nolan Arenado", Rating: 0.285, Hand: Right},
		{Name: "Pete Alonso", Rating: 0.275, Hand: Right},
		{Name: "Vladimir Guerrero Jr.", Rating: 0.265, Hand: Right},
		{Name: "Rafael Devers", Rating: 0.255, Hand: Right},
		{Name: "Bo Bichette", Rating: 0.245, Hand: Right},
		{Name: "Dansby Swanson", Rating: 0.235, Hand: Right},
		{Name: "Freddie Freeman", Rating: 0.335, Hand: Left},
		{Name: "Juan Soto", Rating: 0.325, Hand: Left},
		{Name: "Yordan Alvarez", Rating: 0.310, Hand: Left},
		{Name: "Kyle Tucker", Rating: 0.300, Hand: Left},
		{Name: "Randy Arozarena", Rating: 0.290, Hand: Left},
		{Name: "Christian Yelich", Rating: 0.280, Hand: Left},
		{Name: "Corey Seager", Rating: 0.270, Hand: Left},
		{Name: "Max Muncy", Rating: 0.260, Hand: Left},
		{Name: "Brandon Lowe", Rating: 0.250, Hand: Left},
		{Name: "Anthony Rizzo", Rating: 0.240, Hand: Left},
	}
}

// OneLefty returns five right-handed batters and a single left-handed one.
func OneLefty() Roster {
	return Roster{
		{Rating: 0.340, Hand: Right},
		{Rating: 0.315, Hand: Right},
		{Rating: 0.305, Hand: Right},
		{Rating: 0.295, Hand: Right},
		{Rating: 0.285, Hand: Right},
		{Rating: 0.335, Hand: Left},
	}
}

// OneRighty returns a single right-handed batter and five left-handed ones.
func OneRighty() Roster {
	return Roster{
		{Rating: 0.340, Hand: Right},
		{Rating: 0.335, Hand: Left},
		{Rating: 0.325, Hand: Left},
		{Rating: 0.310, Hand: Left},
		{Rating: 0.300, Hand: Left},
		{Rating: 0.290, Hand: Left},
	}
}

// Balanced10 returns five right-handed and five left-handed batters.
func Balanced10() Roster {
	return Roster{
		{Rating: 0.340, Hand: Right},
		{Rating: 0.315, Hand: Right},
		{Rating: 0.305, Hand: Right},
		{Rating: 0.295, Hand: Right},
		{Rating: 0.285, Hand: Right},
		{Rating: 0.335, Hand: Left},
		{Rating: 0.325, Hand: Left},
		{Rating: 0.310, Hand: Left},
		{Rating: 0.300, Hand: Left},
		{Rating: 0.290, Hand: Left},
	}
}
