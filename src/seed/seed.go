package seed

import (
	"log"

	"github.com/MuseoAndino/Catalogue-Backend/src/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// sampleArtifacts is the reference catalogue: six Andean textile-collection
// pieces. Seeding is idempotent, keyed on accession number.
func sampleArtifacts() []models.ArtifactModel {
	return []models.ArtifactModel{
		{
			Title:           "Paracas Embroidered Funerary Mantle",
			Category:        "Textiles",
			Period:          "300 BCE - 100 CE",
			Culture:         "Paracas",
			Material:        "Camelid fiber",
			Dimensions:      "245cm x 130cm",
			Location:        "Paracas Peninsula, Peru",
			Description:     "A richly embroidered funerary mantle from the Paracas Necropolis, decorated with rows of flying anthropomorphic figures in vivid polychrome wool.",
			Provenance:      "Recovered from the Wari Kayan necropolis excavations; accessioned 1958.",
			Significance:    "Among the finest surviving examples of Paracas embroidery, central to the study of pre-Columbian textile iconography.",
			ImageURL:        "/img/artifacts/paracas_textile.jpg",
			AccessionNumber: "AM-TX-001",
			DateAcquired:    "1958-03-15",
			Condition:       "Excellent",
			Exhibitions:     models.StringList{"Paracas: Ancient Textiles of Peru, 1992", "Colors of the Andes, 2005"},
			Bibliography: models.StringList{
				"Paul, A. Paracas Ritual Attire: Symbols of Authority in Ancient Peru. University of Oklahoma Press, 1990.",
				"Townsend, R. F. The Ancient Americas: Art from Sacred Landscapes. Art Institute of Chicago, 1992.",
			},
		},
		{
			Title:           "Huari Polychrome Ceremonial Vessel",
			Category:        "Ceramics",
			Period:          "600-1000 CE",
			Culture:         "Huari",
			Material:        "Ceramic with polychrome slip",
			Dimensions:      "28cm height, 22cm diameter",
			Location:        "Ayacucho Valley, Peru",
			Description:     "A ceremonial drinking vessel bearing the front-facing staff deity of the Huari state, painted in cream, ochre and black slip.",
			Provenance:      "Acquired from the Mendoza collection, 1965; export papers of 1948 on file.",
			Significance:    "Documents the spread of Huari imperial religious imagery across the central Andes.",
			ImageURL:        "/img/artifacts/huari_vessel.jpg",
			AccessionNumber: "MNA-CR-002",
			DateAcquired:    "1965-11-22",
			Condition:       "Very good",
			Exhibitions:     models.StringList{"Huari: Empire of the Andes, 2008", "Art and Cosmos in the Ancient Andes, 2015"},
			Bibliography: models.StringList{
				"Isbell, W. H., & McEwan, G. F. (Eds.). Huari Administrative Structure: Prehistoric Monumental Architecture and State Government. Dumbarton Oaks Research Library and Collection, 1991.",
				"Nash, D. J. (Ed.). The Oxford Handbook of Andean Archaeology. Oxford University Press, 2013.",
			},
		},
		{
			Title:           "Chimú Feathered Ceremonial Headdress",
			Category:        "Featherwork",
			Period:          "1100-1470 CE",
			Culture:         "Chimú",
			Material:        "Feathers",
			Dimensions:      "40cm height, 35cm width",
			Location:        "Chan Chan, Peru",
			Description:     "A ceremonial headdress of tropical macaw and parrot feathers mounted on a cotton base, worn by the Chimú elite.",
			Provenance:      "Accessioned 1972 through the national cultural patrimony exchange.",
			Significance:    "Illustrates the long-distance feather trade linking the north coast to the Amazon basin.",
			ImageURL:        "/img/artifacts/chimu_headdress.jpg",
			AccessionNumber: "MDOP-OR-003",
			DateAcquired:    "1972-06-01",
			Condition:       "Good",
			Exhibitions:     models.StringList{"Splendors of the Chimú Empire, 1995", "Gold of the Andes, 2007"},
			Bibliography: models.StringList{
				"Conrad, G. W. Religion and Empire: The Dynamics of Aztec and Inca Expansion. Cambridge University Press, 1984.",
				"Quilter, J. The Ancient Central Andes. Routledge, 2014.",
			},
		},
		{
			Title:           "Inca Wooden Kero Cup",
			Category:        "Woodwork",
			Period:          "1400-1532 CE",
			Culture:         "Inca",
			Material:        "Wood with pigmented resin inlay",
			Dimensions:      "18cm height, 14cm diameter",
			Location:        "Cusco, Peru",
			Description:     "A ceremonial drinking cup carved from a single block of wood and inlaid with geometric tocapu motifs in colored resin.",
			Provenance:      "Acquired 1980 from a documented colonial-era collection.",
			Significance:    "Keros were used in ritual toasts that bound the Inca state together; the tocapu designs remain a key epigraphic puzzle.",
			ImageURL:        "/img/artifacts/inca_kero.jpg",
			AccessionNumber: "MI-KE-004",
			DateAcquired:    "1980-09-10",
			Condition:       "Very good",
			Exhibitions:     models.StringList{"Inca: Lords of Gold and Glory, 2000", "The Power of the Incas, 2010"},
			Bibliography: models.StringList{
				"D'Altroy, T. N. The Incas. Blackwell Publishing, 2002.",
				"Covey, R. A. How the Incas Built Their Heartland: State Formation and the Innovation of Imperial Strategies in the Sacred Valley, Peru. University of Michigan Press, 2019.",
			},
		},
		{
			Title:           "Nazca Polychrome Woven Panel",
			Category:        "Textiles",
			Period:          "100-700 CE",
			Culture:         "Nazca",
			Material:        "Alpaca wool",
			Dimensions:      "95cm x 60cm",
			Location:        "Río Grande de Nazca, Peru",
			Description:     "A finely woven panel depicting stylized hummingbirds and trophy heads, echoing the iconography of the Nazca geoglyphs.",
			Provenance:      "Gift of the Arriola family, 1988.",
			Significance:    "Connects Nazca textile iconography with the desert geoglyph tradition.",
			ImageURL:        "/img/artifacts/nazca_textile.jpg",
			AccessionNumber: "MAA-TX-005",
			DateAcquired:    "1988-04-01",
			Condition:       "Good",
			Exhibitions:     models.StringList{"Nazca: Decoding the Desert, 2003", "Weaving the World: Textile Art of Ancient Peru, 2012"},
			Bibliography: models.StringList{
				"Silverman, H., & Proulx, D. The Nasca. Blackwell Publishers, 2002.",
				"Aveni, A. Nasca: Eighth Wonder of the World. British Museum Press, 2000.",
			},
		},
		{
			Title:           "Chancay Cotton Burial Doll",
			Category:        "Textiles",
			Period:          "1000-1470 CE",
			Culture:         "Chancay",
			Material:        "Cotton",
			Dimensions:      "32cm height",
			Location:        "Chancay Valley, Peru",
			Description:     "A funerary figure of woven and stuffed cotton with an embroidered face, placed in Chancay burials as a companion for the dead.",
			Provenance:      "Accessioned 1990 from the Torres bequest.",
			Significance:    "A hallmark of Chancay mortuary practice and domestic textile production.",
			ImageURL:        "/img/artifacts/chancay_doll.jpg",
			AccessionNumber: "MTP-TX-006",
			DateAcquired:    "1990-07-15",
			Condition:       "Excellent",
			Exhibitions:     models.StringList{"Chancay: Textiles and Pottery, 2005", "Daily Life in Ancient Peru, 2014"},
			Bibliography: models.StringList{
				"d'Harcourt, R. Textiles of Ancient Peru and Their Techniques. University of Washington Press, 1962.",
				"Frame, M. Andean Four-Cornered Hats: Ancient Symbols. Thames & Hudson, 2005.",
			},
		},
	}
}

func Seed(db *gorm.DB) {
	// Admin user
	var user models.UserModel
	result := db.Where("username = ?", "curator").First(&user)
	if result.Error == nil {
		log.Println("User 'curator' already exists")
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("curator"), bcrypt.DefaultCost)

		newUser := models.UserModel{
			Username:    "curator",
			Password:    string(hashedPassword),
			FullName:    "Museum Curator",
			Institution: "Museo Andino",
			Admin:       true,
		}
		if err := db.Create(&newUser).Error; err != nil {
			log.Printf("Failed to create user: %v\n", err)
		} else {
			log.Println("User 'curator' created")
		}
	}

	// Catalogue seeding
	createdCount := 0
	for _, artifact := range sampleArtifacts() {
		var existing models.ArtifactModel
		checkResult := db.Where("accession_number = ?", artifact.AccessionNumber).First(&existing)
		if checkResult.Error == nil {
			continue
		}
		if err := db.Create(&artifact).Error; err != nil {
			log.Printf("Failed to create artifact %s: %v\n", artifact.AccessionNumber, err)
		} else {
			createdCount++
		}
	}
	if createdCount > 0 {
		log.Printf("Seeded %d catalogue artifacts\n", createdCount)
	} else {
		log.Println("Catalogue artifacts already seeded")
	}
}
