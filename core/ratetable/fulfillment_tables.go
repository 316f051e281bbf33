package ratetable

import "fba-cost/core/types"

// Published fulfillment fee schedules, one per category and season.
// Mid and over-$50 bands collapse to one value for oversize tiers.
var fulfillmentSchedules = []FulfillmentSchedule{
	{
		Key: Key{Category: types.CategoryNormal, Season: types.SeasonNonPeak2025},
		SmallStandard: []Step{
			{MaxOz: 2, Fee: bands("2.29", "3.06", "3.32")},
			{MaxOz: 4, Fee: bands("2.38", "3.15", "3.41")},
			{MaxOz: 6, Fee: bands("2.47", "3.24", "3.50")},
			{MaxOz: 8, Fee: bands("2.56", "3.33", "3.59")},
			{MaxOz: 10, Fee: bands("2.66", "3.43", "3.69")},
			{MaxOz: 12, Fee: bands("2.76", "3.53", "3.79")},
			{MaxOz: 14, Fee: bands("2.83", "3.60", "3.86")},
			{MaxOz: 16, Fee: bands("2.88", "3.65", "3.91")},
		},
		LargeStandard: []Step{
			{MaxOz: 4, Fee: bands("2.91", "3.68", "3.94")},
			{MaxOz: 8, Fee: bands("3.13", "3.90", "4.16")},
			{MaxOz: 12, Fee: bands("3.38", "4.15", "4.41")},
			{MaxOz: 16, Fee: bands("3.78", "4.55", "4.81")},
			{MaxOz: 20, Fee: bands("4.22", "4.99", "5.25")},
			{MaxOz: 24, Fee: bands("4.60", "5.37", "5.63")},
			{MaxOz: 28, Fee: bands("4.75", "5.52", "5.78")},
			{MaxOz: 32, Fee: bands("5.00", "5.77", "6.03")},
			{MaxOz: 36, Fee: bands("5.10", "5.87", "6.13")},
			{MaxOz: 40, Fee: bands("5.33", "6.10", "6.36")},
			{MaxOz: 44, Fee: bands("5.47", "6.24", "6.50")},
			{MaxOz: 48, Fee: bands("5.59", "6.36", "6.62")},
		},
		LargeStandardOver: Increment{Base: bands("6.01", "6.78", "7.04"), FromOz: 48, UnitOz: 4, Fee: money("0.08")},
		SmallOversize: PerPound{Base: bands("8.84", "9.61", "9.61"), StartLb: 1, PerLb: money("0.38")},
		LargeOversize: PerPound{Base: bands("18.28", "19.05", "19.05"), StartLb: 1, PerLb: money("0.38")},
		SpecialOversize: []WeightBand{
			{MaxLb: 50, PerPound: PerPound{Base: bands("25.56", "26.33", "26.33"), StartLb: 1, PerLb: money("0.38")}},
			{MaxLb: 70, PerPound: PerPound{Base: bands("39.35", "40.12", "40.12"), StartLb: 51, PerLb: money("0.75")}},
			{MaxLb: 150, PerPound: PerPound{Base: bands("54.04", "54.81", "54.81"), StartLb: 71, PerLb: money("0.75")}},
			{MaxLb: 0, PerPound: PerPound{Base: bands("194.18", "194.95", "194.95"), StartLb: 151, PerLb: money("0.19")}},
		},
	},
	{
		Key: Key{Category: types.CategoryNormal, Season: types.SeasonPeak2025},
		SmallStandard: []Step{
			{MaxOz: 2, Fee: bands("2.48", "3.25", "3.51")},
			{MaxOz: 4, Fee: bands("2.57", "3.34", "3.60")},
			{MaxOz: 6, Fee: bands("2.66", "3.43", "3.69")},
			{MaxOz: 8, Fee: bands("2.75", "3.52", "3.78")},
			{MaxOz: 10, Fee: bands("2.85", "3.62", "3.88")},
			{MaxOz: 12, Fee: bands("2.95", "3.72", "3.98")},
			{MaxOz: 14, Fee: bands("3.02", "3.79", "4.05")},
			{MaxOz: 16, Fee: bands("3.07", "3.84", "4.10")},
		},
		LargeStandard: []Step{
			{MaxOz: 4, Fee: bands("3.21", "3.98", "4.24")},
			{MaxOz: 8, Fee: bands("3.43", "4.20", "4.46")},
			{MaxOz: 12, Fee: bands("3.68", "4.45", "4.71")},
			{MaxOz: 16, Fee: bands("4.08", "4.85", "5.11")},
			{MaxOz: 20, Fee: bands("4.52", "5.29", "5.55")},
			{MaxOz: 24, Fee: bands("4.90", "5.67", "5.93")},
			{MaxOz: 28, Fee: bands("5.05", "5.82", "6.08")},
			{MaxOz: 32, Fee: bands("5.30", "6.07", "6.33")},
			{MaxOz: 36, Fee: bands("5.40", "6.17", "6.43")},
			{MaxOz: 40, Fee: bands("5.63", "6.40", "6.66")},
			{MaxOz: 44, Fee: bands("5.77", "6.54", "6.80")},
			{MaxOz: 48, Fee: bands("5.89", "6.66", "6.92")},
		},
		LargeStandardOver: Increment{Base: bands("6.41", "7.18", "7.44"), FromOz: 48, UnitOz: 4, Fee: money("0.08")},
		SmallOversize: PerPound{Base: bands("9.39", "10.16", "10.16"), StartLb: 1, PerLb: money("0.38")},
		LargeOversize: PerPound{Base: bands("18.83", "19.60", "19.60"), StartLb: 1, PerLb: money("0.38")},
		SpecialOversize: []WeightBand{
			{MaxLb: 50, PerPound: PerPound{Base: bands("26.31", "27.08", "27.08"), StartLb: 1, PerLb: money("0.38")}},
			{MaxLb: 70, PerPound: PerPound{Base: bands("40.10", "40.87", "40.87"), StartLb: 51, PerLb: money("0.75")}},
			{MaxLb: 150, PerPound: PerPound{Base: bands("54.79", "55.56", "55.56"), StartLb: 71, PerLb: money("0.75")}},
			{MaxLb: 0, PerPound: PerPound{Base: bands("194.93", "195.70", "195.70"), StartLb: 151, PerLb: money("0.19")}},
		},
	},
	{
		Key: Key{Category: types.CategoryNormal, Season: types.SeasonNonPeak2026},
		SmallStandard: []Step{
			{MaxOz: 2, Fee: bands("2.37", "3.14", "3.40")},
			{MaxOz: 4, Fee: bands("2.46", "3.23", "3.49")},
			{MaxOz: 6, Fee: bands("2.55", "3.32", "3.58")},
			{MaxOz: 8, Fee: bands("2.64", "3.41", "3.67")},
			{MaxOz: 10, Fee: bands("2.74", "3.51", "3.77")},
			{MaxOz: 12, Fee: bands("2.84", "3.61", "3.87")},
			{MaxOz: 14, Fee: bands("2.91", "3.68", "3.94")},
			{MaxOz: 16, Fee: bands("2.96", "3.73", "3.99")},
		},
		LargeStandard: []Step{
			{MaxOz: 4, Fee: bands("2.99", "3.76", "4.02")},
			{MaxOz: 8, Fee: bands("3.21", "3.98", "4.24")},
			{MaxOz: 12, Fee: bands("3.46", "4.23", "4.49")},
			{MaxOz: 16, Fee: bands("3.86", "4.63", "4.89")},
			{MaxOz: 20, Fee: bands("4.30", "5.07", "5.33")},
			{MaxOz: 24, Fee: bands("4.68", "5.45", "5.71")},
			{MaxOz: 28, Fee: bands("4.83", "5.60", "5.86")},
			{MaxOz: 32, Fee: bands("5.08", "5.85", "6.11")},
			{MaxOz: 36, Fee: bands("5.18", "5.95", "6.21")},
			{MaxOz: 40, Fee: bands("5.41", "6.18", "6.44")},
			{MaxOz: 44, Fee: bands("5.55", "6.32", "6.58")},
			{MaxOz: 48, Fee: bands("5.67", "6.44", "6.70")},
		},
		LargeStandardOver: Increment{Base: bands("6.11", "6.88", "7.14"), FromOz: 48, UnitOz: 4, Fee: money("0.08")},
		SmallOversize: PerPound{Base: bands("9.14", "9.91", "9.91"), StartLb: 1, PerLb: money("0.38")},
		LargeOversize: PerPound{Base: bands("18.58", "19.35", "19.35"), StartLb: 1, PerLb: money("0.38")},
		SpecialOversize: []WeightBand{
			{MaxLb: 50, PerPound: PerPound{Base: bands("26.06", "26.83", "26.83"), StartLb: 1, PerLb: money("0.38")}},
			{MaxLb: 70, PerPound: PerPound{Base: bands("39.85", "40.62", "40.62"), StartLb: 51, PerLb: money("0.75")}},
			{MaxLb: 150, PerPound: PerPound{Base: bands("54.54", "55.31", "55.31"), StartLb: 71, PerLb: money("0.75")}},
			{MaxLb: 0, PerPound: PerPound{Base: bands("194.68", "195.45", "195.45"), StartLb: 151, PerLb: money("0.19")}},
		},
	},
	{
		Key: Key{Category: types.CategoryApparel, Season: types.SeasonNonPeak2025},
		SmallStandard: []Step{
			{MaxOz: 4, Fee: bands("2.50", "3.27", "3.53")},
			{MaxOz: 8, Fee: bands("2.65", "3.42", "3.68")},
			{MaxOz: 12, Fee: bands("2.95", "3.72", "3.98")},
			{MaxOz: 16, Fee: bands("3.21", "3.98", "4.24")},
		},
		LargeStandard: []Step{
			{MaxOz: 4, Fee: bands("3.48", "4.25", "4.51")},
			{MaxOz: 8, Fee: bands("3.68", "4.45", "4.71")},
			{MaxOz: 12, Fee: bands("3.90", "4.67", "4.93")},
			{MaxOz: 16, Fee: bands("4.40", "5.17", "5.43")},
			{MaxOz: 24, Fee: bands("4.91", "5.68", "5.94")},
			{MaxOz: 32, Fee: bands("5.14", "5.91", "6.17")},
			{MaxOz: 40, Fee: bands("5.70", "6.47", "6.73")},
			{MaxOz: 48, Fee: bands("5.87", "6.64", "6.90")},
		},
		LargeStandardOver: Increment{Base: bands("6.21", "6.98", "7.24"), FromOz: 48, UnitOz: 8, Fee: money("0.16")},
		SmallOversize: PerPound{Base: bands("8.84", "9.61", "9.61"), StartLb: 1, PerLb: money("0.38")},
		LargeOversize: PerPound{Base: bands("18.28", "19.05", "19.05"), StartLb: 1, PerLb: money("0.38")},
		SpecialOversize: []WeightBand{
			{MaxLb: 50, PerPound: PerPound{Base: bands("25.56", "26.33", "26.33"), StartLb: 1, PerLb: money("0.38")}},
			{MaxLb: 70, PerPound: PerPound{Base: bands("39.35", "40.12", "40.12"), StartLb: 51, PerLb: money("0.75")}},
			{MaxLb: 150, PerPound: PerPound{Base: bands("54.04", "54.81", "54.81"), StartLb: 71, PerLb: money("0.75")}},
			{MaxLb: 0, PerPound: PerPound{Base: bands("194.18", "194.95", "194.95"), StartLb: 151, PerLb: money("0.19")}},
		},
	},
	{
		Key: Key{Category: types.CategoryApparel, Season: types.SeasonPeak2025},
		SmallStandard: []Step{
			{MaxOz: 4, Fee: bands("2.69", "3.46", "3.72")},
			{MaxOz: 8, Fee: bands("2.84", "3.61", "3.87")},
			{MaxOz: 12, Fee: bands("3.14", "3.91", "4.17")},
			{MaxOz: 16, Fee: bands("3.40", "4.17", "4.43")},
		},
		LargeStandard: []Step{
			{MaxOz: 4, Fee: bands("3.78", "4.55", "4.81")},
			{MaxOz: 8, Fee: bands("3.98", "4.75", "5.01")},
			{MaxOz: 12, Fee: bands("4.20", "4.97", "5.23")},
			{MaxOz: 16, Fee: bands("4.70", "5.47", "5.73")},
			{MaxOz: 24, Fee: bands("5.21", "5.98", "6.24")},
			{MaxOz: 32, Fee: bands("5.44", "6.21", "6.47")},
			{MaxOz: 40, Fee: bands("6.00", "6.77", "7.03")},
			{MaxOz: 48, Fee: bands("6.17", "6.94", "7.20")},
		},
		LargeStandardOver: Increment{Base: bands("6.61", "7.38", "7.64"), FromOz: 48, UnitOz: 8, Fee: money("0.16")},
		SmallOversize: PerPound{Base: bands("9.39", "10.16", "10.16"), StartLb: 1, PerLb: money("0.38")},
		LargeOversize: PerPound{Base: bands("18.83", "19.60", "19.60"), StartLb: 1, PerLb: money("0.38")},
		SpecialOversize: []WeightBand{
			{MaxLb: 50, PerPound: PerPound{Base: bands("26.31", "27.08", "27.08"), StartLb: 1, PerLb: money("0.38")}},
			{MaxLb: 70, PerPound: PerPound{Base: bands("40.10", "40.87", "40.87"), StartLb: 51, PerLb: money("0.75")}},
			{MaxLb: 150, PerPound: PerPound{Base: bands("54.79", "55.56", "55.56"), StartLb: 71, PerLb: money("0.75")}},
			{MaxLb: 0, PerPound: PerPound{Base: bands("194.93", "195.70", "195.70"), StartLb: 151, PerLb: money("0.19")}},
		},
	},
	{
		Key: Key{Category: types.CategoryApparel, Season: types.SeasonNonPeak2026},
		SmallStandard: []Step{
			{MaxOz: 4, Fee: bands("2.58", "3.35", "3.61")},
			{MaxOz: 8, Fee: bands("2.73", "3.50", "3.76")},
			{MaxOz: 12, Fee: bands("3.03", "3.80", "4.06")},
			{MaxOz: 16, Fee: bands("3.29", "4.06", "4.32")},
		},
		LargeStandard: []Step{
			{MaxOz: 4, Fee: bands("3.56", "4.33", "4.59")},
			{MaxOz: 8, Fee: bands("3.76", "4.53", "4.79")},
			{MaxOz: 12, Fee: bands("3.98", "4.75", "5.01")},
			{MaxOz: 16, Fee: bands("4.48", "5.25", "5.51")},
			{MaxOz: 24, Fee: bands("4.99", "5.76", "6.02")},
			{MaxOz: 32, Fee: bands("5.22", "5.99", "6.25")},
			{MaxOz: 40, Fee: bands("5.78", "6.55", "6.81")},
			{MaxOz: 48, Fee: bands("5.95", "6.72", "6.98")},
		},
		LargeStandardOver: Increment{Base: bands("6.31", "7.08", "7.34"), FromOz: 48, UnitOz: 8, Fee: money("0.16")},
		SmallOversize: PerPound{Base: bands("9.14", "9.91", "9.91"), StartLb: 1, PerLb: money("0.38")},
		LargeOversize: PerPound{Base: bands("18.58", "19.35", "19.35"), StartLb: 1, PerLb: money("0.38")},
		SpecialOversize: []WeightBand{
			{MaxLb: 50, PerPound: PerPound{Base: bands("26.06", "26.83", "26.83"), StartLb: 1, PerLb: money("0.38")}},
			{MaxLb: 70, PerPound: PerPound{Base: bands("39.85", "40.62", "40.62"), StartLb: 51, PerLb: money("0.75")}},
			{MaxLb: 150, PerPound: PerPound{Base: bands("54.54", "55.31", "55.31"), StartLb: 71, PerLb: money("0.75")}},
			{MaxLb: 0, PerPound: PerPound{Base: bands("194.68", "195.45", "195.45"), StartLb: 151, PerLb: money("0.19")}},
		},
	},
	{
		Key: Key{Category: types.CategoryDangerous, Season: types.SeasonNonPeak2025},
		SmallStandard: []Step{
			{MaxOz: 2, Fee: bands("3.21", "3.98", "4.24")},
			{MaxOz: 4, Fee: bands("3.30", "4.07", "4.33")},
			{MaxOz: 6, Fee: bands("3.39", "4.16", "4.42")},
			{MaxOz: 8, Fee: bands("3.48", "4.25", "4.51")},
			{MaxOz: 10, Fee: bands("3.58", "4.35", "4.61")},
			{MaxOz: 12, Fee: bands("3.68", "4.45", "4.71")},
			{MaxOz: 14, Fee: bands("3.75", "4.52", "4.78")},
			{MaxOz: 16, Fee: bands("3.80", "4.57", "4.83")},
		},
		LargeStandard: []Step{
			{MaxOz: 4, Fee: bands("3.81", "4.58", "4.84")},
			{MaxOz: 8, Fee: bands("4.03", "4.80", "5.06")},
			{MaxOz: 12, Fee: bands("4.28", "5.05", "5.31")},
			{MaxOz: 16, Fee: bands("4.68", "5.45", "5.71")},
			{MaxOz: 20, Fee: bands("5.12", "5.89", "6.15")},
			{MaxOz: 24, Fee: bands("5.50", "6.27", "6.53")},
			{MaxOz: 28, Fee: bands("5.65", "6.42", "6.68")},
			{MaxOz: 32, Fee: bands("5.90", "6.67", "6.93")},
			{MaxOz: 36, Fee: bands("6.00", "6.77", "7.03")},
			{MaxOz: 40, Fee: bands("6.23", "7.00", "7.26")},
			{MaxOz: 44, Fee: bands("6.37", "7.14", "7.40")},
			{MaxOz: 48, Fee: bands("6.49", "7.26", "7.52")},
		},
		LargeStandardOver: Increment{Base: bands("6.91", "7.68", "7.94"), FromOz: 48, UnitOz: 4, Fee: money("0.08")},
		SmallOversize: PerPound{Base: bands("9.85", "10.62", "10.62"), StartLb: 1, PerLb: money("0.38")},
		LargeOversize: PerPound{Base: bands("19.29", "20.06", "20.06"), StartLb: 1, PerLb: money("0.38")},
		SpecialOversize: []WeightBand{
			{MaxLb: 50, PerPound: PerPound{Base: bands("26.57", "27.34", "27.34"), StartLb: 1, PerLb: money("0.38")}},
			{MaxLb: 70, PerPound: PerPound{Base: bands("40.36", "41.13", "41.13"), StartLb: 51, PerLb: money("0.75")}},
			{MaxLb: 150, PerPound: PerPound{Base: bands("55.05", "55.82", "55.82"), StartLb: 71, PerLb: money("0.75")}},
			{MaxLb: 0, PerPound: PerPound{Base: bands("195.19", "195.96", "195.96"), StartLb: 151, PerLb: money("0.19")}},
		},
	},
	{
		Key: Key{Category: types.CategoryDangerous, Season: types.SeasonPeak2025},
		SmallStandard: []Step{
			{MaxOz: 2, Fee: bands("3.40", "4.17", "4.43")},
			{MaxOz: 4, Fee: bands("3.49", "4.26", "4.52")},
			{MaxOz: 6, Fee: bands("3.58", "4.35", "4.61")},
			{MaxOz: 8, Fee: bands("3.67", "4.44", "4.70")},
			{MaxOz: 10, Fee: bands("3.77", "4.54", "4.80")},
			{MaxOz: 12, Fee: bands("3.87", "4.64", "4.90")},
			{MaxOz: 14, Fee: bands("3.94", "4.71", "4.97")},
			{MaxOz: 16, Fee: bands("3.99", "4.76", "5.02")},
		},
		LargeStandard: []Step{
			{MaxOz: 4, Fee: bands("4.11", "4.88", "5.14")},
			{MaxOz: 8, Fee: bands("4.33", "5.10", "5.36")},
			{MaxOz: 12, Fee: bands("4.58", "5.35", "5.61")},
			{MaxOz: 16, Fee: bands("4.98", "5.75", "6.01")},
			{MaxOz: 20, Fee: bands("5.42", "6.19", "6.45")},
			{MaxOz: 24, Fee: bands("5.80", "6.57", "6.83")},
			{MaxOz: 28, Fee: bands("5.95", "6.72", "6.98")},
			{MaxOz: 32, Fee: bands("6.20", "6.97", "7.23")},
			{MaxOz: 36, Fee: bands("6.30", "7.07", "7.33")},
			{MaxOz: 40, Fee: bands("6.53", "7.30", "7.56")},
			{MaxOz: 44, Fee: bands("6.67", "7.44", "7.70")},
			{MaxOz: 48, Fee: bands("6.79", "7.56", "7.82")},
		},
		LargeStandardOver: Increment{Base: bands("7.31", "8.08", "8.34"), FromOz: 48, UnitOz: 4, Fee: money("0.08")},
		SmallOversize: PerPound{Base: bands("10.40", "11.17", "11.17"), StartLb: 1, PerLb: money("0.38")},
		LargeOversize: PerPound{Base: bands("19.84", "20.61", "20.61"), StartLb: 1, PerLb: money("0.38")},
		SpecialOversize: []WeightBand{
			{MaxLb: 50, PerPound: PerPound{Base: bands("27.32", "28.09", "28.09"), StartLb: 1, PerLb: money("0.38")}},
			{MaxLb: 70, PerPound: PerPound{Base: bands("41.11", "41.88", "41.88"), StartLb: 51, PerLb: money("0.75")}},
			{MaxLb: 150, PerPound: PerPound{Base: bands("55.80", "56.57", "56.57"), StartLb: 71, PerLb: money("0.75")}},
			{MaxLb: 0, PerPound: PerPound{Base: bands("195.94", "196.71", "196.71"), StartLb: 151, PerLb: money("0.19")}},
		},
	},
	{
		Key: Key{Category: types.CategoryDangerous, Season: types.SeasonNonPeak2026},
		SmallStandard: []Step{
			{MaxOz: 2, Fee: bands("3.29", "4.06", "4.32")},
			{MaxOz: 4, Fee: bands("3.38", "4.15", "4.41")},
			{MaxOz: 6, Fee: bands("3.47", "4.24", "4.50")},
			{MaxOz: 8, Fee: bands("3.56", "4.33", "4.59")},
			{MaxOz: 10, Fee: bands("3.66", "4.43", "4.69")},
			{MaxOz: 12, Fee: bands("3.76", "4.53", "4.79")},
			{MaxOz: 14, Fee: bands("3.83", "4.60", "4.86")},
			{MaxOz: 16, Fee: bands("3.88", "4.65", "4.91")},
		},
		LargeStandard: []Step{
			{MaxOz: 4, Fee: bands("3.89", "4.66", "4.92")},
			{MaxOz: 8, Fee: bands("4.11", "4.88", "5.14")},
			{MaxOz: 12, Fee: bands("4.36", "5.13", "5.39")},
			{MaxOz: 16, Fee: bands("4.76", "5.53", "5.79")},
			{MaxOz: 20, Fee: bands("5.20", "5.97", "6.23")},
			{MaxOz: 24, Fee: bands("5.58", "6.35", "6.61")},
			{MaxOz: 28, Fee: bands("5.73", "6.50", "6.76")},
			{MaxOz: 32, Fee: bands("5.98", "6.75", "7.01")},
			{MaxOz: 36, Fee: bands("6.08", "6.85", "7.11")},
			{MaxOz: 40, Fee: bands("6.31", "7.08", "7.34")},
			{MaxOz: 44, Fee: bands("6.45", "7.22", "7.48")},
			{MaxOz: 48, Fee: bands("6.57", "7.34", "7.60")},
		},
		LargeStandardOver: Increment{Base: bands("7.01", "7.78", "8.04"), FromOz: 48, UnitOz: 4, Fee: money("0.08")},
		SmallOversize: PerPound{Base: bands("10.15", "10.92", "10.92"), StartLb: 1, PerLb: money("0.38")},
		LargeOversize: PerPound{Base: bands("19.59", "20.36", "20.36"), StartLb: 1, PerLb: money("0.38")},
		SpecialOversize: []WeightBand{
			{MaxLb: 50, PerPound: PerPound{Base: bands("27.07", "27.84", "27.84"), StartLb: 1, PerLb: money("0.38")}},
			{MaxLb: 70, PerPound: PerPound{Base: bands("40.86", "41.63", "41.63"), StartLb: 51, PerLb: money("0.75")}},
			{MaxLb: 150, PerPound: PerPound{Base: bands("55.55", "56.32", "56.32"), StartLb: 71, PerLb: money("0.75")}},
			{MaxLb: 0, PerPound: PerPound{Base: bands("195.69", "196.46", "196.46"), StartLb: 151, PerLb: money("0.19")}},
		},
	},
}
