package catalog

import (
	"tomato-ca/internal/automata"
	"tomato-ca/internal/core"
)

var wireworldPalette = core.Palette{
	{0, 0, 0},
	{0, 128, 255},
	{255, 64, 0},
	{255, 200, 0},
}

// Default is the built-in catalog.
var Default = []FamilyTable{
	{
		Family: automata.FamilyLife,
		Entries: []Entry{
			{Name: "Conway's Life", Rules: "23/3"},
			{Name: "HighLife", Rules: "23/36"},
			{Name: "Day & Night", Rules: "34678/3678"},
			{Name: "Seeds", Rules: "/2"},
			{Name: "Maze", Rules: "12345/3"},
			{Name: "Replicator", Rules: "1357/1357"},
			{Name: "Coral", Rules: "45678/3"},
		},
	},
	{
		Family: automata.FamilyGenerations,
		Entries: []Entry{
			{Name: "Brian's Brain", Rules: "/2/3"},
			{Name: "Star Wars", Rules: "345/2/4"},
			{Name: "Frogs", Rules: "12/34/3"},
			{Name: "Sticks", Rules: "3456/2/6"},
			{Name: "Bloomerang", Rules: "234/34678/24"},
			{Name: "Burst", Rules: "0235678/3468/9"},
		},
	},
	{
		Family: automata.FamilyCyclic,
		Entries: []Entry{
			{Name: "313", Rules: "R1/T3/C3/NM"},
			{Name: "Amoeba", Rules: "R3/T10/C2/NN"},
			{Name: "Cyclic Spirals", Rules: "R3/T5/C8/NM"},
			{Name: "Fourteen Colours", Rules: "R1/T1/C14/NN"},
			{Name: "Perfect Spirals", Rules: "R1/T3/C4/NM/GH"},
			{Name: "Greenberg-Hastings", Rules: "R1/T1/C3/NN/GH"},
		},
	},
	{
		Family: automata.FamilyLargerThanLife,
		Entries: []Entry{
			{Name: "Bosco's Rule", Rules: "R5,C0,M1,S34..58,B34..45,NM"},
			{Name: "Majority", Rules: "R4,C0,M1,S41..81,B41..81,NM"},
			{Name: "Waffle", Rules: "R7,C0,M1,S100..200,B75..170,NM"},
			{Name: "Globe", Rules: "R8,C0,M0,S163..223,B74..252,NM"},
			{Name: "Diamond Bugs", Rules: "R4,C3,M1,S12..20,B12..14,NN"},
		},
	},
	{
		Family: automata.FamilyNeumannBinary,
		Entries: []Entry{
			{Name: "Parity", Rules: "201101001100101101001011001101001"},
			{Name: "Cross Parity", Rules: "201101001100101100110100110010110"},
			{Name: "Vote", Rules: "200000001000101110001011101111111"},
			{Name: "Sum Mod 3", Rules: "3" +
				"012120201120201012201012120120201012201012120012120201201012120" +
				"012120201120201012120201012201012120012120201201012120012120201" +
				"120201012012120201120201012201012120201012120012120201120201012" +
				"012120201120201012201012120120201012201012120012120201"},
		},
	},
	{
		Family: automata.FamilyRulesTable,
		Entries: []Entry{
			{Name: "Life Table", Rules: "1,0,0,0,0,0,1,0,0,0,0,0,0,0,0,1,1"},
			{Name: "Brian's Brain Table", Rules: "1,0,0,0,0,1,0,0,0,0,0,0,0,2,2,2,2,2,2,2,2,2,2,0"},
			{
				Name:    "Wireworld",
				Rules:   "1,0,0,0,0,0,0,0,0,0,0,0,0,2,2,2,2,2,2,2,2,2,2,3,3,3,3,3,3,3,3,3,3,3,1,1,3,3,3,3,3,3,3",
				Palette: wireworldPalette,
			},
			{Name: "Fredkin Cross", Rules: "2,1,1,0,1,0,1,0,1,0,0,0,0,0,1,0,1,0,1"},
		},
	},
	{
		Family: automata.FamilyWeightedLife,
		Entries: []Entry{
			{Name: "Weighted Conway", Rules: "NW1,NN1,NE1,WW1,ME0,EE1,SW1,SS1,SE1,HI0,RS2,RS3,RB3"},
			{Name: "Orthogonal Bias", Rules: "NW1,NN2,NE1,WW2,ME0,EE2,SW1,SS2,SE1,HI0,RS3,RS4,RS5,RB4,RB5"},
			{Name: "Inhibitor Trails", Rules: "NW1,NN3,NE1,WW3,ME-2,EE3,SW1,SS3,SE1,HI4,RS1,RS2,RS4,RB3,RB6"},
			{Name: "Diagonal Flow", Rules: "NW4,NN0,NE1,WW0,ME0,EE0,SW1,SS0,SE4,HI3,RS4,RS5,RB4"},
		},
	},
	{
		Family: automata.FamilyLangtonsAnt,
		Entries: []Entry{
			{Name: "Langton's Ant", Rules: ""},
		},
	},
}
