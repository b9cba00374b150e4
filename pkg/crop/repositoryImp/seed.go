package repositoryImp

import "github.com/h809829-coder/agrosmart/entities"

var seedProfiles = []entities.CropProfile{
	{Name: "Rice", SoilType: "Clay", Season: "Kharif", WaterRequirement: "High", Budget: "Medium", Fertilizer: "Urea, DAP", IrrigationSchedule: "Every 2-3 days", ExpectedYield: "4-6 tons/hectare"},
	{Name: "Wheat", SoilType: "Loamy", Season: "Rabi", WaterRequirement: "Medium", Budget: "Medium", Fertilizer: "NPK, Urea", IrrigationSchedule: "Every 10-15 days", ExpectedYield: "3-5 tons/hectare"},
	{Name: "Cotton", SoilType: "Black", Season: "Kharif", WaterRequirement: "Medium", Budget: "High", Fertilizer: "DAP, Potash", IrrigationSchedule: "Every 15-20 days", ExpectedYield: "2-3 tons/hectare"},
	{Name: "Groundnut", SoilType: "Red", Season: "Kharif", WaterRequirement: "Low", Budget: "Low", Fertilizer: "Gypsum, SSP", IrrigationSchedule: "Every 10 days", ExpectedYield: "1.5-2.5 tons/hectare"},
	{Name: "Maize", SoilType: "Sandy", Season: "Kharif", WaterRequirement: "Medium", Budget: "Low", Fertilizer: "Nitrogen, Zinc", IrrigationSchedule: "Every 7-10 days", ExpectedYield: "5-8 tons/hectare"},
	{Name: "Mustard", SoilType: "Sandy", Season: "Rabi", WaterRequirement: "Low", Budget: "Low", Fertilizer: "Sulphur, Urea", IrrigationSchedule: "Every 20 days", ExpectedYield: "1-2 tons/hectare"},
	{Name: "Sugarcane", SoilType: "Loamy", Season: "Zaid", WaterRequirement: "High", Budget: "High", Fertilizer: "Organic Manure, NPK", IrrigationSchedule: "Every 10-12 days", ExpectedYield: "70-100 tons/hectare"},
	{Name: "Moong Dal", SoilType: "Sandy", Season: "Zaid", WaterRequirement: "Low", Budget: "Low", Fertilizer: "Phosphorus", IrrigationSchedule: "Every 15 days", ExpectedYield: "0.5-1 ton/hectare"},
}

// SeedProfiles returns a fresh copy of the initial catalog.
func SeedProfiles() []entities.CropProfile {
	out := make([]entities.CropProfile, len(seedProfiles))
	copy(out, seedProfiles)
	return out
}
