package handlers

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"aion/internal/middleware"
)

const (
	msgScenesCreated   = "Successfully created %d scenes"
	msgTopicRequired   = "Topic is required"
	msgInvalidDuration = "Duration must be a positive number of seconds"
	msgDurationTooLong = "Duration must not exceed %d seconds"
	msgVideoNotFound   = "Video not found"
)

var messages = newCatalog()

func newCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.Arabic))
	entries := map[language.Tag]map[string]string{
		language.Arabic: {
			msgScenesCreated:   "تم إنشاء %d مشاهد بنجاح",
			msgTopicRequired:   "الموضوع مطلوب",
			msgInvalidDuration: "يجب أن تكون المدة عددًا موجبًا من الثواني",
			msgDurationTooLong: "يجب ألا تتجاوز المدة %d ثانية",
			msgVideoNotFound:   "الفيديو غير موجود",
		},
		language.English: {
			msgScenesCreated:   msgScenesCreated,
			msgTopicRequired:   msgTopicRequired,
			msgInvalidDuration: msgInvalidDuration,
			msgDurationTooLong: msgDurationTooLong,
			msgVideoNotFound:   msgVideoNotFound,
		},
		language.Indonesian: {
			msgScenesCreated:   "Berhasil membuat %d adegan",
			msgTopicRequired:   "Topik wajib diisi",
			msgInvalidDuration: "Durasi harus berupa jumlah detik yang positif",
			msgDurationTooLong: "Durasi tidak boleh melebihi %d detik",
			msgVideoNotFound:   "Video tidak ditemukan",
		},
	}
	for tag, msgs := range entries {
		for key, msg := range msgs {
			if err := b.SetString(tag, key, msg); err != nil {
				panic(err)
			}
		}
	}
	return b
}

// printer returns a message printer for a free-form language tag, falling
// back to the default locale when the tag is unsupported.
func printer(lang string) *message.Printer {
	locale := middleware.MatchLocale(lang)
	if locale == "" {
		locale = middleware.DefaultLocale
	}
	return message.NewPrinter(language.Make(locale), message.Catalog(messages))
}
