package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeyProducts         = "products"
	KeyOrders           = "orders"
	KeySales            = "sales"
	KeyAnalytics        = "analytics"
	KeyManageProducts   = "manage_products"
	KeyRefresh          = "refresh"
	KeySettings         = "settings"
	KeyFile             = "file"
	KeyLanguage         = "language"
	KeyDataDirectory    = "data_directory"
	KeyOrphanPolicy     = "orphan_policy"
	KeyWatchFiles       = "watch_files"
	KeyShowIssues       = "show_issues"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeyClose            = "close"
	KeyBrowse           = "browse"
	KeySettingsSaved    = "settings_saved"
	KeyOpenDataFolder   = "open_data_folder"
	KeyCatalogEmpty     = "catalog_empty"
	KeyCatalogFailed    = "catalog_failed"
	KeyLinesSkipped     = "lines_skipped"
	KeySummary          = "summary"
	KeyBundledData      = "bundled_data"
	KeyPageUnavailable  = "page_unavailable"
	KeyCategories       = "categories"
	KeyCategory         = "category"
	KeyName             = "name"
	KeyDescription      = "description"
	KeyPrice            = "price"
	KeyAddProduct       = "add_product"
	KeyAddCategory      = "add_category"
	KeyCatalogRefreshed = "catalog_refreshed"
	KeyErrorOpenFolder  = "error_open_folder"
	KeyEditProducts     = "edit_products"
	KeyEditCategories   = "edit_categories"
	KeyErrorOpenFile    = "error_open_file"
)

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
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "WonderTrack",
		KeyProducts:         "Products",
		KeyOrders:           "Orders",
		KeySales:            "Sales",
		KeyAnalytics:        "Analytics",
		KeyManageProducts:   "Manage products",
		KeyRefresh:          "Refresh",
		KeySettings:         "Settings",
		KeyFile:             "File",
		KeyLanguage:         "Language",
		KeyDataDirectory:    "Data Directory",
		KeyOrphanPolicy:     "Products in undeclared categories",
		KeyWatchFiles:       "Reload when data files change",
		KeyShowIssues:       "List skipped lines",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeyClose:            "Close",
		KeyBrowse:           "Browse",
		KeySettingsSaved:    "Settings saved successfully!",
		KeyOpenDataFolder:   "Open data folder",
		KeyCatalogEmpty:     "No categories yet. Add some with Manage products.",
		KeyCatalogFailed:    "Failed to load catalog",
		KeyLinesSkipped:     "%d lines skipped",
		KeySummary:          "%d categories · %d products",
		KeyBundledData:      "showing bundled sample data",
		KeyPageUnavailable:  "This page is not available yet",
		KeyCategories:       "Categories",
		KeyCategory:         "Category",
		KeyName:             "Name",
		KeyDescription:      "Description",
		KeyPrice:            "Price",
		KeyAddProduct:       "Add product",
		KeyAddCategory:      "Add category",
		KeyCatalogRefreshed: "Catalog refreshed",
		KeyErrorOpenFolder:  "Error opening folder",
		KeyEditProducts:     "Edit products file",
		KeyEditCategories:   "Edit categories file",
		KeyErrorOpenFile:    "Error opening file",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:         "WonderTrack",
		KeyProducts:         "Товары",
		KeyOrders:           "Заказы",
		KeySales:            "Продажи",
		KeyAnalytics:        "Аналитика",
		KeyManageProducts:   "Управление товарами",
		KeyRefresh:          "Обновить",
		KeySettings:         "Настройки",
		KeyFile:             "Файл",
		KeyLanguage:         "Язык",
		KeyDataDirectory:    "Папка данных",
		KeyOrphanPolicy:     "Товары без объявленной категории",
		KeyWatchFiles:       "Перезагружать при изменении файлов",
		KeyShowIssues:       "Показывать пропущенные строки",
		KeySave:             "Сохранить",
		KeyCancel:           "Отмена",
		KeyClose:            "Закрыть",
		KeyBrowse:           "Обзор",
		KeySettingsSaved:    "Настройки успешно сохранены!",
		KeyOpenDataFolder:   "Открыть папку данных",
		KeyCatalogEmpty:     "Категорий пока нет. Добавьте их в управлении товарами.",
		KeyCatalogFailed:    "Не удалось загрузить каталог",
		KeyLinesSkipped:     "Пропущено строк: %d",
		KeySummary:          "Категорий: %d · товаров: %d",
		KeyBundledData:      "показаны встроенные данные",
		KeyPageUnavailable:  "Эта страница пока недоступна",
		KeyCategories:       "Категории",
		KeyCategory:         "Категория",
		KeyName:             "Название",
		KeyDescription:      "Описание",
		KeyPrice:            "Цена",
		KeyAddProduct:       "Добавить товар",
		KeyAddCategory:      "Добавить категорию",
		KeyCatalogRefreshed: "Каталог обновлён",
		KeyErrorOpenFolder:  "Ошибка открытия папки",
		KeyEditProducts:     "Редактировать файл товаров",
		KeyEditCategories:   "Редактировать файл категорий",
		KeyErrorOpenFile:    "Ошибка открытия файла",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:         "WonderTrack",
		KeyProducts:         "Produtos",
		KeyOrders:           "Pedidos",
		KeySales:            "Vendas",
		KeyAnalytics:        "Análises",
		KeyManageProducts:   "Gerenciar produtos",
		KeyRefresh:          "Atualizar",
		KeySettings:         "Configurações",
		KeyFile:             "Arquivo",
		KeyLanguage:         "Idioma",
		KeyDataDirectory:    "Diretório de Dados",
		KeyOrphanPolicy:     "Produtos em categorias não declaradas",
		KeyWatchFiles:       "Recarregar quando os arquivos mudarem",
		KeyShowIssues:       "Listar linhas ignoradas",
		KeySave:             "Salvar",
		KeyCancel:           "Cancelar",
		KeyClose:            "Fechar",
		KeyBrowse:           "Navegar",
		KeySettingsSaved:    "Configurações salvas com sucesso!",
		KeyOpenDataFolder:   "Abrir pasta de dados",
		KeyCatalogEmpty:     "Nenhuma categoria ainda. Adicione em Gerenciar produtos.",
		KeyCatalogFailed:    "Falha ao carregar o catálogo",
		KeyLinesSkipped:     "%d linhas ignoradas",
		KeySummary:          "%d categorias · %d produtos",
		KeyBundledData:      "exibindo dados de exemplo",
		KeyPageUnavailable:  "Esta página ainda não está disponível",
		KeyCategories:       "Categorias",
		KeyCategory:         "Categoria",
		KeyName:             "Nome",
		KeyDescription:      "Descrição",
		KeyPrice:            "Preço",
		KeyAddProduct:       "Adicionar produto",
		KeyAddCategory:      "Adicionar categoria",
		KeyCatalogRefreshed: "Catálogo atualizado",
		KeyErrorOpenFolder:  "Erro ao abrir pasta",
		KeyEditProducts:     "Editar arquivo de produtos",
		KeyEditCategories:   "Editar arquivo de categorias",
		KeyErrorOpenFile:    "Erro ao abrir arquivo",
	}
}
