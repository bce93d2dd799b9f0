package ui

import "github.com/ytget/hog-gallery/internal/model"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeySettings           = "settings"
	KeyFile               = "file"
	KeyLanguage           = "language"
	KeyDownloadDirectory  = "download_directory"
	KeyDownloadSettings   = "download_settings"
	KeyInterfaceSettings  = "interface_settings"
	KeySave               = "save"
	KeyCancel             = "cancel"
	KeyBrowse             = "browse"
	KeySettingsSaved      = "settings_saved"
	KeySearchPlaceholder  = "search_placeholder"
	KeyNoResults          = "no_results"
	KeyCopied             = "copied"
	KeyDownloaded         = "downloaded"
	KeyDownloadFailed     = "download_failed"
	KeyOpenDownloads      = "open_downloads"
	KeyRevealLastDownload = "reveal_last_download"
	KeyNothingDownloaded  = "nothing_downloaded"
	KeyErrorOpeningFolder = "error_opening_folder"
	KeyGalleryCount       = "gallery_count"
	KeySelectLanguage     = "select_language"
	KeyDownloadDirHint    = "download_dir_hint"
)

// messageKeys maps activation outcome messages to their text keys
var messageKeys = map[string]string{
	model.MessageCopied:         KeyCopied,
	model.MessageDownloaded:     KeyDownloaded,
	model.MessageDownloadFailed: KeyDownloadFailed,
}

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// TranslateMessage localizes an activation outcome message. Unknown
// messages are returned unchanged.
func (l *Localization) TranslateMessage(message string) string {
	if key, ok := messageKeys[message]; ok {
		return l.GetText(key)
	}
	return message
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "Hog Gallery",
		KeySettings:           "Settings",
		KeyFile:               "File",
		KeyLanguage:           "Language",
		KeyDownloadDirectory:  "Download Directory",
		KeyDownloadSettings:   "Download Settings",
		KeyInterfaceSettings:  "Interface Settings",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
		KeyBrowse:             "Browse",
		KeySettingsSaved:      "Settings saved successfully!",
		KeySearchPlaceholder:  "Search hogs... (press / to focus)",
		KeyNoResults:          "No hogs found",
		KeyCopied:             model.MessageCopied,
		KeyDownloaded:         model.MessageDownloaded,
		KeyDownloadFailed:     model.MessageDownloadFailed,
		KeyOpenDownloads:      "Open Downloads Folder",
		KeyRevealLastDownload: "Reveal Last Download",
		KeyNothingDownloaded:  "Nothing downloaded yet",
		KeyErrorOpeningFolder: "Error opening folder",
		KeyGalleryCount:       "%d of %d hogs",
		KeySelectLanguage:     "Select language",
		KeyDownloadDirHint:    "Download directory path",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:           "Галерея хогов",
		KeySettings:           "Настройки",
		KeyFile:               "Файл",
		KeyLanguage:           "Язык",
		KeyDownloadDirectory:  "Папка загрузки",
		KeyDownloadSettings:   "Загрузка",
		KeyInterfaceSettings:  "Интерфейс",
		KeySave:               "Сохранить",
		KeyCancel:             "Отмена",
		KeyBrowse:             "Обзор",
		KeySettingsSaved:      "Настройки успешно сохранены!",
		KeySearchPlaceholder:  "Поиск... (нажмите / для фокуса)",
		KeyNoResults:          "Ничего не найдено",
		KeyCopied:             "Скопировано в буфер обмена!",
		KeyDownloaded:         "Загружено!",
		KeyDownloadFailed:     "Ошибка загрузки",
		KeyOpenDownloads:      "Открыть папку загрузок",
		KeyRevealLastDownload: "Показать последнюю загрузку",
		KeyNothingDownloaded:  "Пока ничего не загружено",
		KeyErrorOpeningFolder: "Ошибка открытия папки",
		KeyGalleryCount:       "%d из %d",
		KeySelectLanguage:     "Выберите язык",
		KeyDownloadDirHint:    "Путь к папке загрузки",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:           "Galeria de Hogs",
		KeySettings:           "Configurações",
		KeyFile:               "Arquivo",
		KeyLanguage:           "Idioma",
		KeyDownloadDirectory:  "Diretório de Download",
		KeyDownloadSettings:   "Configurações de Download",
		KeyInterfaceSettings:  "Configurações de Interface",
		KeySave:               "Salvar",
		KeyCancel:             "Cancelar",
		KeyBrowse:             "Navegar",
		KeySettingsSaved:      "Configurações salvas com sucesso!",
		KeySearchPlaceholder:  "Buscar hogs... (pressione / para focar)",
		KeyNoResults:          "Nenhum hog encontrado",
		KeyCopied:             "Copiado para a área de transferência!",
		KeyDownloaded:         "Baixado!",
		KeyDownloadFailed:     "Falha no download",
		KeyOpenDownloads:      "Abrir Pasta de Downloads",
		KeyRevealLastDownload: "Mostrar Último Download",
		KeyNothingDownloaded:  "Nada baixado ainda",
		KeyErrorOpeningFolder: "Erro ao abrir pasta",
		KeyGalleryCount:       "%d de %d hogs",
		KeySelectLanguage:     "Selecione o idioma",
		KeyDownloadDirHint:    "Caminho do diretório de download",
	}
}
