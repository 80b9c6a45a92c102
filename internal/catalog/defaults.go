package catalog

import (
	"github.com/litescript/skychart/internal/astro"
)

// Default returns the built-in catalog: bright stars plus a starter set of
// constellation line figures. Coordinates are J2000 epoch. Star data sourced
// from the Yale Bright Star Catalog and IAU star names; colors follow the
// upstream SIMBAD converter's spectral-class palette.
func Default() *Collection {
	return &Collection{
		Stars: defaultStars,
		Lines: defaultConstellations,
	}
}

// Spectral-class palette from the catalog converter.
var (
	colorBlue        = RGB{R: 0.7, G: 0.8, B: 1}
	colorBlueWhite   = RGB{R: 0.9, G: 0.9, B: 1}
	colorWhite       = RGB{R: 1, G: 0.95, B: 0.9}
	colorYellowWhite = RGB{R: 1, G: 0.9, B: 0.7}
	colorYellow      = RGB{R: 1, G: 0.8, B: 0.5}
	colorOrange      = RGB{R: 1, G: 0.7, B: 0.4}
	colorRed         = RGB{R: 1, G: 0.6, B: 0.3}
)

func star(name string, ra, dec, mag float64, c RGB) Star {
	return Star{
		Name:      name,
		Position:  astro.EquatorialPoint{RADeg: ra, DecDeg: dec},
		Magnitude: mag,
		Color:     c,
	}
}

// defaultStars contains bright stars visible from various latitudes,
// ordered roughly by magnitude (brightest first).
var defaultStars = []Star{
	star("Sirius", 101.287, -16.716, -1.46, colorWhite),
	star("Canopus", 95.988, -52.696, -0.74, colorYellowWhite),
	star("Arcturus", 213.915, 19.182, -0.05, colorOrange),
	star("Vega", 279.235, 38.784, 0.03, colorBlueWhite),
	star("Capella", 79.172, 45.998, 0.08, colorYellow),
	star("Rigel", 78.634, -8.202, 0.13, colorBlue),
	star("Procyon", 114.826, 5.225, 0.34, colorYellowWhite),
	star("Achernar", 24.429, -57.237, 0.46, colorBlue),
	star("Betelgeuse", 88.793, 7.407, 0.50, colorRed),
	star("Hadar", 210.956, -60.373, 0.61, colorBlue),
	star("Altair", 297.696, 8.868, 0.76, colorWhite),
	star("Acrux", 186.650, -63.099, 0.76, colorBlue),
	star("Aldebaran", 68.980, 16.509, 0.85, colorOrange),
	star("Antares", 247.352, -26.432, 0.96, colorRed),
	star("Spica", 201.298, -11.161, 0.97, colorBlue),
	star("Pollux", 116.329, 28.026, 1.14, colorOrange),
	star("Fomalhaut", 344.413, -29.622, 1.16, colorWhite),
	star("Deneb", 310.358, 45.280, 1.25, colorBlueWhite),
	star("Mimosa", 191.930, -59.689, 1.25, colorBlue),
	star("Regulus", 152.093, 11.967, 1.35, colorBlueWhite),
	star("Adhara", 104.656, -28.972, 1.50, colorBlue),
	star("Castor", 113.650, 31.889, 1.58, colorWhite),
	star("Gacrux", 187.791, -57.113, 1.63, colorRed),
	star("Shaula", 263.402, -37.104, 1.63, colorBlue),
	star("Bellatrix", 81.283, 6.350, 1.64, colorBlue),
	star("Elnath", 81.573, 28.608, 1.65, colorBlueWhite),
	star("Miaplacidus", 138.300, -69.717, 1.68, colorWhite),
	star("Alnilam", 84.053, -1.202, 1.69, colorBlue),
	star("Alnair", 332.058, -46.961, 1.74, colorBlueWhite),
	star("Alnitak", 85.190, -1.943, 1.77, colorBlue),
	star("Alioth", 193.507, 55.960, 1.77, colorWhite),
	star("Dubhe", 165.932, 61.751, 1.79, colorOrange),
	star("Mirfak", 51.081, 49.861, 1.79, colorYellowWhite),
	star("Wezen", 107.098, -26.393, 1.84, colorYellowWhite),
	star("Kaus Australis", 276.043, -34.384, 1.85, colorBlueWhite),
	star("Alkaid", 206.885, 49.313, 1.86, colorBlue),
	star("Sargas", 264.330, -42.998, 1.87, colorYellowWhite),
	star("Menkalinan", 89.882, 44.948, 1.90, colorWhite),
	star("Atria", 252.166, -69.028, 1.92, colorOrange),
	star("Alhena", 99.428, 16.399, 1.93, colorWhite),
	star("Peacock", 306.412, -56.735, 1.94, colorBlue),
	star("Mirzam", 95.675, -17.956, 1.98, colorBlue),
	star("Alphard", 141.897, -8.659, 2.00, colorOrange),
	star("Hamal", 31.793, 23.463, 2.00, colorOrange),
	star("Polaris", 37.954, 89.264, 2.02, colorYellowWhite),
	star("Diphda", 10.897, -17.987, 2.02, colorOrange),
	star("Nunki", 283.816, -26.297, 2.02, colorBlue),
	star("Mizar", 200.981, 54.925, 2.04, colorWhite),
	star("Alpheratz", 2.097, 29.091, 2.06, colorBlueWhite),
	star("Mirach", 17.433, 35.621, 2.05, colorRed),
	star("Kochab", 222.676, 74.156, 2.08, colorOrange),
	star("Rasalhague", 263.734, 12.560, 2.08, colorWhite),
	star("Saiph", 86.939, -9.670, 2.09, colorBlue),
	star("Algol", 47.042, 40.957, 2.12, colorBlueWhite),
	star("Denebola", 177.265, 14.572, 2.13, colorWhite),
	star("Suhail", 136.999, -43.433, 2.21, colorOrange),
	star("Mintaka", 83.002, -0.299, 2.23, colorBlue),
	star("Sadr", 305.557, 40.257, 2.23, colorYellowWhite),
	star("Eltanin", 269.152, 51.489, 2.23, colorOrange),
	star("Schedar", 10.127, 56.537, 2.23, colorOrange),
	star("Alphecca", 233.672, 26.715, 2.23, colorWhite),
	star("Caph", 2.295, 59.150, 2.27, colorYellowWhite),
	star("Dschubba", 240.083, -22.622, 2.32, colorBlue),
	star("Merak", 165.460, 56.382, 2.37, colorWhite),
	star("Izar", 221.247, 27.074, 2.37, colorOrange),
	star("Enif", 326.046, 9.875, 2.39, colorOrange),
	star("Ankaa", 6.571, -42.306, 2.38, colorOrange),
	star("Phecda", 178.458, 53.695, 2.44, colorWhite),
	star("Sabik", 257.595, -15.725, 2.43, colorWhite),
	star("Scheat", 345.944, 28.083, 2.42, colorRed),
	star("Navi", 14.177, 60.717, 2.47, colorBlue),
	star("Markab", 346.190, 15.205, 2.49, colorBlueWhite),
	star("Aljanah", 311.553, 33.970, 2.48, colorOrange),
	star("Alderamin", 319.645, 62.586, 2.51, colorWhite),
	star("Megrez", 183.857, 57.033, 3.31, colorWhite),
	star("Albireo", 292.680, 27.960, 3.18, colorOrange),
	star("Ruchbah", 21.454, 60.235, 2.66, colorWhite),
	star("Segin", 28.599, 63.670, 3.35, colorBlue),
	star("Imai", 183.786, -58.749, 2.79, colorBlue),
	star("Fawaris", 296.244, 45.131, 2.89, colorBlueWhite),
	star("Alcyone", 56.871, 24.105, 2.87, colorBlueWhite),
	star("Thuban", 211.097, 64.376, 3.65, colorWhite),
	star("Alcor", 201.306, 54.988, 3.99, colorWhite),
	star("Yildun", 263.054, 86.586, 4.36, colorWhite),
}

// line builds one polyline from [ra, dec] degree pairs.
func line(pairs ...[2]float64) []astro.EquatorialPoint {
	pts := make([]astro.EquatorialPoint, len(pairs))
	for i, p := range pairs {
		pts[i] = astro.EquatorialPoint{RADeg: p[0], DecDeg: p[1]}
	}
	return pts
}

// defaultConstellations is a starter set of stick figures. Each feature keeps
// its polylines separate so strokes never bridge unrelated figures.
var defaultConstellations = []LineFeature{
	{
		Name: "Orion",
		Lines: [][]astro.EquatorialPoint{
			// Shoulders through the belt to the feet
			line([2]float64{88.793, 7.407}, [2]float64{85.190, -1.943}, [2]float64{84.053, -1.202}, [2]float64{83.002, -0.299}, [2]float64{78.634, -8.202}),
			line([2]float64{81.283, 6.350}, [2]float64{83.002, -0.299}),
			line([2]float64{85.190, -1.943}, [2]float64{86.939, -9.670}),
			line([2]float64{88.793, 7.407}, [2]float64{81.283, 6.350}),
		},
	},
	{
		Name: "Ursa Major",
		Lines: [][]astro.EquatorialPoint{
			// Handle and bowl of the Big Dipper
			line([2]float64{206.885, 49.313}, [2]float64{200.981, 54.925}, [2]float64{193.507, 55.960}, [2]float64{183.857, 57.033}, [2]float64{178.458, 53.695}, [2]float64{165.460, 56.382}, [2]float64{165.932, 61.751}, [2]float64{183.857, 57.033}),
		},
	},
	{
		Name: "Cassiopeia",
		Lines: [][]astro.EquatorialPoint{
			line([2]float64{2.295, 59.150}, [2]float64{10.127, 56.537}, [2]float64{14.177, 60.717}, [2]float64{21.454, 60.235}, [2]float64{28.599, 63.670}),
		},
	},
	{
		Name: "Crux",
		Lines: [][]astro.EquatorialPoint{
			line([2]float64{186.650, -63.099}, [2]float64{187.791, -57.113}),
			line([2]float64{191.930, -59.689}, [2]float64{183.786, -58.749}),
		},
	},
	{
		Name: "Cygnus",
		Lines: [][]astro.EquatorialPoint{
			line([2]float64{310.358, 45.280}, [2]float64{305.557, 40.257}, [2]float64{292.680, 27.960}),
			line([2]float64{296.244, 45.131}, [2]float64{305.557, 40.257}, [2]float64{311.553, 33.970}),
		},
	},
}
