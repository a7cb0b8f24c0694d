package caption

import (
	"slices"
	"strings"
)

// Category names. Membership is a fixed closed set; anything outside it maps
// to CategoryUnknown.
const (
	CategoryAnimals     = "animals"
	CategoryFood        = "food"
	CategoryVehicles    = "vehicles"
	CategoryNature      = "nature"
	CategoryElectronics = "electronics"
	CategoryClothing    = "clothing"
	CategoryFurniture   = "furniture"
	CategoryUnknown     = "unknown"
)

// categoryOrder fixes the match order: the first category containing a label
// wins, and ties in dominant-category selection resolve to the earlier one.
var categoryOrder = []string{
	CategoryAnimals,
	CategoryFood,
	CategoryVehicles,
	CategoryNature,
	CategoryElectronics,
	CategoryClothing,
	CategoryFurniture,
}

var categories = map[string][]string{
	CategoryAnimals: {
		"golden_retriever", "labrador_retriever", "beagle", "pug",
		"chihuahua", "pomeranian", "samoyed", "siberian_husky",
		"tabby", "persian_cat", "siamese_cat", "hamster", "angora",
		"koala", "giant_panda", "tiger", "lion", "african_elephant",
		"zebra", "brown_bear",
	},
	CategoryFood: {
		"pizza", "cheeseburger", "hotdog", "ice_cream", "banana",
		"orange", "strawberry", "pineapple", "broccoli", "carbonara",
		"bagel", "pretzel", "espresso", "red_wine",
	},
	CategoryVehicles: {
		"sports_car", "convertible", "jeep", "minivan", "pickup",
		"ambulance", "fire_engine", "school_bus", "motor_scooter",
		"mountain_bike", "airliner", "speedboat",
	},
	CategoryNature: {
		"lakeside", "seashore", "volcano", "alp", "cliff",
		"coral_reef", "geyser", "valley",
	},
	CategoryElectronics: {
		"laptop", "desktop_computer", "cellular_telephone", "television",
		"remote_control", "digital_watch", "printer", "computer_keyboard",
		"monitor", "iPod",
	},
	CategoryClothing: {
		"jersey", "jean", "cardigan", "sweatshirt", "running_shoe",
		"sandal", "cowboy_hat", "backpack",
	},
	CategoryFurniture: {
		"rocking_chair", "studio_couch", "dining_table", "desk",
		"wardrobe", "bookcase", "table_lamp",
	},
}

var translations = map[string]string{
	"golden_retriever":   "골든 리트리버",
	"labrador_retriever": "래브라도 리트리버",
	"beagle":             "비글",
	"pug":                "퍼그",
	"chihuahua":          "치와와",
	"pomeranian":         "포메라니안",
	"samoyed":            "사모예드",
	"siberian_husky":     "시베리안 허스키",
	"tabby":              "얼룩 고양이",
	"persian_cat":        "페르시안 고양이",
	"siamese_cat":        "샴 고양이",
	"hamster":            "햄스터",
	"angora":             "앙고라 토끼",
	"koala":              "코알라",
	"giant_panda":        "자이언트 판다",
	"tiger":              "호랑이",
	"lion":               "사자",
	"african_elephant":   "아프리카 코끼리",
	"zebra":              "얼룩말",
	"brown_bear":         "불곰",

	"pizza":        "피자",
	"cheeseburger": "치즈버거",
	"hotdog":       "핫도그",
	"ice_cream":    "아이스크림",
	"banana":       "바나나",
	"orange":       "오렌지",
	"strawberry":   "딸기",
	"pineapple":    "파인애플",
	"broccoli":     "브로콜리",
	"carbonara":    "카르보나라",
	"bagel":        "베이글",
	"pretzel":      "프레첼",
	"espresso":     "에스프레소",
	"red_wine":     "레드 와인",

	"sports_car":    "스포츠카",
	"convertible":   "컨버터블",
	"jeep":          "지프",
	"minivan":       "미니밴",
	"pickup":        "픽업트럭",
	"ambulance":     "구급차",
	"fire_engine":   "소방차",
	"school_bus":    "스쿨버스",
	"motor_scooter": "스쿠터",
	"mountain_bike": "산악자전거",
	"airliner":      "여객기",
	"speedboat":     "쾌속정",

	"lakeside":   "호숫가",
	"seashore":   "해변",
	"volcano":    "화산",
	"alp":        "알프스 산",
	"cliff":      "절벽",
	"coral_reef": "산호초",
	"geyser":     "간헐천",
	"valley":     "계곡",

	"laptop":             "노트북",
	"desktop_computer":   "데스크톱 컴퓨터",
	"cellular_telephone": "휴대전화",
	"television":         "텔레비전",
	"remote_control":     "리모컨",
	"digital_watch":      "디지털 시계",
	"printer":            "프린터",
	"computer_keyboard":  "컴퓨터 키보드",
	"monitor":            "모니터",
	"iPod":               "아이팟",

	"jersey":       "저지 셔츠",
	"jean":         "청바지",
	"cardigan":     "가디건",
	"sweatshirt":   "맨투맨 티셔츠",
	"running_shoe": "운동화",
	"sandal":       "샌들",
	"cowboy_hat":   "카우보이 모자",
	"backpack":     "배낭",

	"rocking_chair": "흔들의자",
	"studio_couch":  "소파",
	"dining_table":  "식탁",
	"desk":          "책상",
	"wardrobe":      "옷장",
	"bookcase":      "책장",
	"table_lamp":    "탁상 램프",
}

// CategoryOf assigns a label to the first category containing it, or
// CategoryUnknown.
func CategoryOf(label string) string {
	for _, cat := range categoryOrder {
		if slices.Contains(categories[cat], label) {
			return cat
		}
	}
	return CategoryUnknown
}

// Translate returns the Korean name for an English model label. Labels
// outside the table fall back to the label with underscores as spaces.
func Translate(label string) string {
	if kr, ok := translations[label]; ok {
		return kr
	}
	return strings.ReplaceAll(label, "_", " ")
}
