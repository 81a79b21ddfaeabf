package domain

// Уровни элементов структуры адреса (AddressElement.Level)
const (
	LevelPrefecture = "prefecture" // префектура
	LevelCity       = "city"       // город / район
	LevelOaza       = "oaza"       // крупная часть квартала
	LevelAza        = "aza"        // мелкая часть квартала
)

// ZipcodeSearchResult - тело ответа API поиска по почтовому индексу.
// Поля апстрима пишутся с заглавной буквы, маппинг задан тегами.
// Неизвестные поля игнорируются декодером.
type ZipcodeSearchResult struct {
	ResultInfo ResultInfo `json:"ResultInfo"`
	Features   []Feature  `json:"Feature"`
}

// ResultInfo - сводная информация ответа
type ResultInfo struct {
	Count       int     `json:"Count"`
	Total       int     `json:"Total"`
	Start       int     `json:"Start"`
	Status      int     `json:"Status"`
	Description string  `json:"Description"`
	Latency     float64 `json:"Latency"`
}

// Feature - один найденный адрес. Name содержит почтовый индекс.
type Feature struct {
	Name     string   `json:"Name"`
	Property Property `json:"Property"`
}

// Property - адресная строка и её структурные элементы (только при detail=full)
type Property struct {
	Address         string           `json:"Address"`
	AddressElements []AddressElement `json:"AddressElement"`
}

// AddressElement - фрагмент структурированного адреса
type AddressElement struct {
	Name  string `json:"Name"`
	Kana  string `json:"Kana"`
	Level string `json:"Level"`
}

// ZipcodeSearchResponse - распарсенный ответ вместе с метаданными HTTP
type ZipcodeSearchResponse struct {
	StatusCode int
	Body       *ZipcodeSearchResult
}
