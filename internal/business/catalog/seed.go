package catalog

import "github.com/zone2fun/py-asset/pkg/model"

// SeedProperties is the static demo catalog. The read path falls back to it
// when the backing store is unreachable so the app never renders blank, and
// cmd/seed loads it into a fresh project.
func SeedProperties() []model.Property {
	return []model.Property{
		{
			ID:          "1",
			Title:       "Modern House near Phayao Lake",
			Price:       2500000,
			Location:    "Mueang Phayao",
			Type:        model.TypeHouse,
			Image:       "https://picsum.photos/800/600?random=1",
			Images:      []string{"https://picsum.photos/800/600?random=1"},
			Description: "3 Bedrooms, 2 Bathrooms, beautiful lake view.",
			Size:        "50 ตร.ว.",
			Coordinates: &model.Coordinates{Lat: 19.166, Lng: 99.901},
			Status:      model.StatusActive,
			ContentType: model.ContentPost,
		},
		{
			ID:          "2",
			Title:       "Rice Field Land 5 Rai",
			Price:       1200000,
			Location:    "Dok Khamtai",
			Type:        model.TypeLand,
			Image:       "https://picsum.photos/800/600?random=2",
			Images:      []string{"https://picsum.photos/800/600?random=2"},
			Description: "Perfect for agriculture or building a resort.",
			Size:        "5 ไร่",
			Coordinates: &model.Coordinates{Lat: 19.120, Lng: 99.950},
			Status:      model.StatusActive,
			ContentType: model.ContentPost,
		},
		{
			ID:          "3",
			Title:       "Student Dormitory Investment",
			Price:       5500000,
			Location:    "Near University of Phayao",
			Type:        model.TypeDormitory,
			Image:       "https://picsum.photos/800/600?random=3",
			Images:      []string{"https://picsum.photos/800/600?random=3"},
			Description: "20 rooms, fully occupied, high ROI.",
			Size:        "2 งาน",
			Coordinates: &model.Coordinates{Lat: 19.030, Lng: 99.920},
			Status:      model.StatusActive,
			ContentType: model.ContentPost,
		},
		{
			ID:          "4",
			Title:       "Cozy Wooden House",
			Price:       1800000,
			Location:    "Mae Chai",
			Type:        model.TypeHouse,
			Image:       "https://picsum.photos/800/600?random=4",
			Images:      []string{"https://picsum.photos/800/600?random=4"},
			Description: "Traditional Lanna style, peaceful environment.",
			Size:        "85 ตร.ว.",
			Coordinates: &model.Coordinates{Lat: 19.300, Lng: 99.800},
			Status:      model.StatusActive,
			ContentType: model.ContentPost,
		},
		{
			ID:          "5",
			Title:       "Empty Land City Center",
			Price:       3000000,
			Location:    "Mueang Phayao",
			Type:        model.TypeLand,
			Image:       "https://picsum.photos/800/600?random=5",
			Images:      []string{"https://picsum.photos/800/600?random=5"},
			Description: "Prime location near the walking street.",
			Size:        "120 ตร.ว.",
			Coordinates: &model.Coordinates{Lat: 19.170, Lng: 99.890},
			Status:      model.StatusActive,
			ContentType: model.ContentPost,
		},
		{
			ID:          "6",
			Title:       "Dormitory near Hospital",
			Price:       4200000,
			Location:    "Mueang Phayao",
			Type:        model.TypeDormitory,
			Image:       "https://picsum.photos/800/600?random=6",
			Images:      []string{"https://picsum.photos/800/600?random=6"},
			Description: "12 rooms, steady tenants, renovated last year.",
			Size:        "1 งาน",
			Coordinates: &model.Coordinates{Lat: 19.160, Lng: 99.905},
			Status:      model.StatusActive,
			ContentType: model.ContentPost,
		},
	}
}
