package readstore

import (
	"legal-storefront/internal/domain/catalog"
	"legal-storefront/internal/domain/money"
	"legal-storefront/internal/pkg/ptr"
)

const (
	magazineCover = "https://images.unsplash.com/photo-1680538993040-63e1dbc523b6?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&q=80&w=1080"
	bookCover     = "https://images.unsplash.com/photo-1619771833572-325fa5664609?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&q=80&w=1080"
)

// NewCatalog builds the storefront's fixed catalog. Each call returns an
// independent instance.
func NewCatalog() *catalog.Catalog {
	return catalog.New(documents(), magazines(), books())
}

func documents() []catalog.Document {
	return []catalog.Document{
		{
			ID:          1,
			Title:       "Codice Civile Italiano 2025",
			Description: "Versione aggiornata con le ultime modifiche legislative",
			Category:    catalog.DocumentCodes,
			Date:        "2025-01-15",
			Format:      "PDF",
			Pages:       2847,
			Size:        "12.5 MB",
		},
		{
			ID:          2,
			Title:       "Giurisprudenza di Cassazione - Diritto di Famiglia",
			Description: "Raccolta delle sentenze più rilevanti dell'ultimo anno",
			Category:    catalog.DocumentCaseLaw,
			Date:        "2024-12-20",
			Format:      "PDF",
			Pages:       456,
			Size:        "8.2 MB",
		},
		{
			ID:          3,
			Title:       "Modulistica Stato Civile Aggiornata",
			Description: "Tutti i moduli ufficiali per gli atti di stato civile",
			Category:    catalog.DocumentForms,
			Date:        "2024-11-30",
			Format:      "DOCX/PDF",
			Pages:       125,
			Size:        "3.1 MB",
		},
		{
			ID:          4,
			Title:       "Decreti Attuativi - Riforma del Diritto di Famiglia",
			Description: "Analisi completa dei recenti decreti ministeriali",
			Category:    catalog.DocumentLegislation,
			Date:        "2024-10-15",
			Format:      "PDF",
			Pages:       89,
			Size:        "2.8 MB",
		},
		{
			ID:          5,
			Title:       "Circolari Ministeriali 2024",
			Description: "Raccolta delle circolari interpretative del Ministero",
			Category:    catalog.DocumentCirculars,
			Date:        "2024-09-08",
			Format:      "PDF",
			Pages:       267,
			Size:        "5.4 MB",
		},
		{
			ID:          6,
			Title:       "Formulario per Atti Notarili",
			Description: "Modelli e formule per la redazione di atti notarili",
			Category:    catalog.DocumentFormularies,
			Date:        "2024-08-22",
			Format:      "DOCX",
			Pages:       334,
			Size:        "4.7 MB",
		},
	}
}

func magazines() []catalog.Magazine {
	return []catalog.Magazine{
		{
			ID:          1,
			Title:       "Diritto Civile Oggi",
			Subtitle:    "Rivista Mensile di Dottrina e Giurisprudenza",
			Issue:       "Anno 45, N. 3 - Marzo 2025",
			CoverImage:  magazineCover,
			PublishDate: "2025-03-01",
			Pages:       128,
			Featured:    true,
			Description: "Focus speciale sulla nuova riforma del diritto di famiglia e le sue implicazioni pratiche",
			Articles: []string{
				"La riforma del diritto di famiglia: aspetti pratici",
				"Giurisprudenza recente in materia di successioni",
				"Il nuovo regime patrimoniale dei coniugi",
			},
		},
		{
			ID:          2,
			Title:       "Stato Civile e Anagrafe",
			Subtitle:    "Quadrimestrale Specializzato",
			Issue:       "Anno 32, N. 1 - Gennaio 2025",
			CoverImage:  magazineCover,
			PublishDate: "2025-01-15",
			Pages:       96,
			Description: "Aggiornamenti normativi e procedure operative per gli ufficiali di stato civile",
			Articles: []string{
				"Digitalizzazione degli atti di stato civile",
				"Procedure per cittadinanze straniere",
				"Casi pratici di correzione errori",
			},
		},
		{
			ID:          3,
			Title:       "Giurisprudenza Civile",
			Subtitle:    "Rassegna Trimestrale",
			Issue:       "Anno 28, N. 4 - Dicembre 2024",
			CoverImage:  magazineCover,
			PublishDate: "2024-12-15",
			Pages:       156,
			Description: "Commenti alle sentenze più significative della Cassazione civile",
			Articles: []string{
				"Responsabilità contrattuale ed extracontrattuale",
				"Diritti reali e proprietà immobiliare",
				"Contratti atipici nella giurisprudenza",
			},
		},
		{
			ID:          4,
			Title:       "Diritto di Famiglia",
			Subtitle:    "Rivista Bimestrale Specializzata",
			Issue:       "Anno 15, N. 6 - Novembre 2024",
			CoverImage:  magazineCover,
			PublishDate: "2024-11-01",
			Pages:       112,
			Featured:    true,
			Description: "Approfondimenti su separazioni, divorzi e tutela dei minori",
			Articles: []string{
				"Affidamento condiviso: novità legislative",
				"Violenza domestica e misure cautelari",
				"Mantenimento e criteri di calcolo",
			},
		},
	}
}

func books() []catalog.Book {
	return []catalog.Book{
		{
			ID:            1,
			Title:         "Manuale di Diritto Civile",
			Subtitle:      "Teoria e Pratica - Edizione 2025",
			Author:        "Prof. Mario Rossi",
			CoverImage:    bookCover,
			Price:         money.FromCents(8990),
			OriginalPrice: ptr.To(money.FromCents(9990)),
			Pages:         1240,
			ISBN:          "978-88-123-4567-8",
			Rating:        4.8,
			Reviews:       127,
			Bestseller:    true,
			Description:   "Il manuale più completo per lo studio e la pratica del diritto civile italiano, aggiornato con le ultime riforme.",
			InStock:       true,
			Category:      catalog.BookManuals,
		},
		{
			ID:          2,
			Title:       "Diritto di Famiglia Commentato",
			Subtitle:    "Codice Civile con Giurisprudenza",
			Author:      "Dott.ssa Laura Bianchi",
			CoverImage:  bookCover,
			Price:       money.FromCents(6500),
			Pages:       890,
			ISBN:        "978-88-123-4568-5",
			Rating:      4.6,
			Reviews:     89,
			Description: "Commentario articolo per articolo del diritto di famiglia con riferimenti giurisprudenziali aggiornati.",
			InStock:     true,
			Category:    catalog.BookCommentary,
		},
		{
			ID:            3,
			Title:         "Formulario Notarile Pratico",
			Subtitle:      "Atti e Contratti Tipici",
			Author:        "Notaio Giuseppe Verdi",
			CoverImage:    bookCover,
			Price:         money.FromCents(12000),
			OriginalPrice: ptr.To(money.FromCents(13500)),
			Pages:         1560,
			ISBN:          "978-88-123-4569-2",
			Rating:        4.9,
			Reviews:       156,
			Bestseller:    true,
			Description:   "La raccolta più completa di formulari notarili per ogni tipo di atto e contratto.",
			InStock:       true,
			Category:      catalog.BookFormularies,
		},
		{
			ID:          4,
			Title:       "Diritto delle Successioni",
			Subtitle:    "Aspetti Teorici e Pratici",
			Author:      "Avv. Francesco Neri",
			CoverImage:  bookCover,
			Price:       money.FromCents(7550),
			Pages:       678,
			ISBN:        "978-88-123-4570-8",
			Rating:      4.5,
			Reviews:     67,
			Description: "Guida completa al diritto successorio con casi pratici e modelli operativi.",
			InStock:     false,
			Category:    catalog.BookSpecialist,
		},
		{
			ID:          5,
			Title:       "Responsabilità Civile e Risarcimento",
			Subtitle:    "Dottrina e Giurisprudenza",
			Author:      "Prof. Anna Viola",
			CoverImage:  bookCover,
			Price:       money.FromCents(5800),
			Pages:       456,
			ISBN:        "978-88-123-4571-5",
			Rating:      4.7,
			Reviews:     92,
			Description: "Trattazione completa della responsabilità civile con focus sul danno e il risarcimento.",
			InStock:     true,
			Category:    catalog.BookSpecialist,
		},
		{
			ID:            6,
			Title:         "Contratti Commerciali Moderni",
			Subtitle:      "Clausole e Strategie Negoziali",
			Author:        "Avv. Roberto Blu",
			CoverImage:    bookCover,
			Price:         money.FromCents(9500),
			OriginalPrice: ptr.To(money.FromCents(11000)),
			Pages:         1120,
			ISBN:          "978-88-123-4572-2",
			Rating:        4.6,
			Reviews:       74,
			Description:   "Guida pratica per la redazione di contratti commerciali nell'era digitale.",
			InStock:       true,
			Category:      catalog.BookCommercial,
		},
	}
}
