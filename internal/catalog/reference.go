package catalog

// City is an entry of the browse-by-city shelf on the home screen.
type City struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

// Cities the marketplace launched in.
var Cities = []City{
	{ID: "istanbul", Name: "İstanbul", Image: "https://picsum.photos/800/600?random=1"},
	{ID: "izmir", Name: "İzmir", Image: "https://picsum.photos/800/600?random=2"},
	{ID: "ankara", Name: "Ankara", Image: "https://picsum.photos/800/600?random=3"},
	{ID: "antalya", Name: "Antalya", Image: "https://picsum.photos/800/600?random=4"},
}

// Brands offered by the listing wizard, in display order.
var Brands = []string{
	"Fiat", "Renault", "Volkswagen", "Ford", "Toyota", "Peugeot",
	"BMW", "Mercedes-Benz", "Audi", "Tesla", "Honda", "Hyundai",
	"Kia", "Volvo", "Nissan", "Citroën", "Opel", "Skoda", "Seat", "Dacia",
}

// BrandModels maps each brand to the models the wizard offers for it.
var BrandModels = map[string][]string{
	"Fiat":          {"Egea", "500", "Panda", "Doblo", "Fiorino"},
	"Renault":       {"Clio", "Megane", "Taliant", "Captur", "Austral", "Zoe"},
	"Volkswagen":    {"Polo", "Golf", "Passat", "Tiguan", "T-Roc", "Taigo"},
	"Ford":          {"Fiesta", "Focus", "Puma", "Kuga", "Ranger"},
	"Toyota":        {"Corolla", "Yaris", "C-HR", "RAV4", "Camry"},
	"Peugeot":       {"208", "2008", "308", "3008", "408", "5008"},
	"BMW":           {"1 Serisi", "2 Serisi", "3 Serisi", "5 Serisi", "X1", "X3", "X5"},
	"Mercedes-Benz": {"A-Serisi", "C-Serisi", "E-Serisi", "CLA", "GLA", "GLC"},
	"Audi":          {"A3", "A4", "A5", "A6", "Q2", "Q3", "Q5"},
	"Tesla":         {"Model 3", "Model Y", "Model S", "Model X"},
	"Honda":         {"Civic", "Jazz", "HR-V", "CR-V"},
	"Hyundai":       {"i10", "i20", "i30", "Bayon", "Tucson", "Elantra"},
	"Kia":           {"Picanto", "Rio", "Stonic", "Ceed", "Sportage"},
	"Volvo":         {"XC40", "XC60", "XC90", "S60", "S90"},
	"Nissan":        {"Micra", "Juke", "Qashqai", "X-Trail"},
	"Citroën":       {"C3", "C4", "C5 Aircross", "C-Elysee"},
	"Opel":          {"Corsa", "Astra", "Mokka", "Crossland", "Grandland"},
	"Skoda":         {"Fabia", "Scala", "Octavia", "Superb", "Kamiq", "Karoq"},
	"Seat":          {"Ibiza", "Leon", "Arona", "Ateca"},
	"Dacia":         {"Sandero", "Duster", "Jogger", "Spring"},
}
