package search

// Controlled vocabularies for listings. Filter values and AI-extracted
// filters are only accepted when they match one of these entries exactly.

var Cities = []string{
	"Managua", "León", "Masaya", "Estelí", "Matagalpa", "Chinandega", "Granada",
	"Jinotega", "Nueva Guinea", "Puerto Cabezas", "Juigalpa", "Rivas", "Ocotal",
	"Jalapa",
	"San Carlos", "Bluefields", "Somoto", "Boaco", "Siuna", "Bonanza", "Rosita",
	"Camoapa", "Nagarote", "Diriamba", "Jinotepe", "San Marcos", "Catarina",
	"Niquinohomo", "Masatepe", "La Paz Centro", "Malpaisillo", "Tipitapa", "Ciudad Sandino",
	"El Rama", "Corinto", "El Viejo",
	"La Trinidad", "Condega", "Palacagüina", "San Juan del Sur", "Tola", "Belén",
	"Potosí", "Moyogalpa", "Altagracia", "San Jorge", "Cárdenas", "San Rafael del Sur",
	"Villa El Carmen", "El Crucero", "Ticuantepe", "La Concha", "San Juan de Limay",
	"Pueblo Nuevo", "Murra", "Quilalí", "Wiwilí de Jinotega", "San Sebastián de Yalí",
	"La Concordia", "San Rafael del Norte", "Santa María de Pantasma", "El Cuá",
	"San José de Bocay", "Waslala", "Rancho Grande", "Río Blanco", "Mulukukú",
	"Prinzapolka", "Waspán", "Desembocadura de Río Grande",
	"Corn Island", "Pearl Lagoon", "Kukra Hill", "Laguna de Perlas", "Bocana de Paiwas",
	"Santo Domingo", "La Libertad", "San Pedro de Lóvago", "Teustepe", "Santa Lucía",
	"San Lorenzo", "Comalapa", "Cuapa", "San Francisco de Cuapa", "Acoyapa",
	"El Coral", "Morrito", "San Miguelito", "El Castillo", "Solentiname",
	"San Juan de Nicaragua", "San Francisco Libre", "Ciudad Darío", "Terrabona",
	"Esquipulas", "San Isidro", "Sébaco", "San Ramón", "Muy Muy", "La Dalia", "El Tuma - La Dalia",
	"San Dionisio", "San Nicolás", "Santa Rosa del Peñón", "El Sauce", "Achuapa",
	"Larreynaga", "El Jicaral", "Santa Teresa", "Dolores", "San Gregorio", "La Conquista",
	"Nandaime", "Tisma", "Malacatoya",
	"San Juan de Oriente", "La Concepción", "Villa Carlos Fonseca",
}

var Categories = []string{
	"Electrónica", "Vehículos", "Motocicletas", "Moda", "Hogar", "Servicios", "Inmuebles",
	"Deportes", "Libros y Revistas", "Mascotas", "Arte y Coleccionables",
	"Juguetes y Juegos", "Música y Películas", "Herramientas", "Otros",
}

const (
	ConditionNew  = "New"
	ConditionUsed = "Used"
)

var (
	citySet     = make(map[string]struct{}, len(Cities))
	categorySet = make(map[string]struct{}, len(Categories))
)

func init() {
	for _, city := range Cities {
		citySet[city] = struct{}{}
	}
	for _, category := range Categories {
		categorySet[category] = struct{}{}
	}
}

func ValidCity(city string) bool {
	_, ok := citySet[city]
	return ok
}

func ValidCategory(category string) bool {
	_, ok := categorySet[category]
	return ok
}

func ValidCondition(condition string) bool {
	return condition == ConditionNew || condition == ConditionUsed
}
