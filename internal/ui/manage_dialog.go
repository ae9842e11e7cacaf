package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"github.com/wondertrack/wondertrack/internal/model"
	"github.com/wondertrack/wondertrack/internal/store"
)

// ProductStore is the write surface the management dialog edits
type ProductStore interface {
	LoadCategories() (store.CategoryResult, error)
	LoadProducts() (store.ProductResult, error)
	AddProduct(p model.ProductItem) error
	UpdateProduct(index int, p model.ProductItem) error
	RemoveProduct(index int) error
	AddCategory(c model.Category) error
	RemoveCategory(c model.Category) error
}

// ManageDialog edits the category and product files. Closing it notifies the
// owner, which re-runs the catalog refresh.
type ManageDialog struct {
	store        ProductStore
	localization *Localization
	window       fyne.Window
	log          *logrus.Entry
	onClosed     func()
	dialog       *dialog.CustomDialog

	categories []model.Category
	products   []model.ProductItem
	// editing is the index of the product loaded into the form, or -1
	editing int

	// UI components
	categoryList   *widget.List
	productList    *widget.List
	categoryEntry  *widget.Entry
	categorySelect *widget.Select
	nameEntry      *widget.Entry
	descEntry      *widget.Entry
	priceEntry     *widget.Entry
	saveProductBtn *widget.Button
}

// NewManageDialog creates the management dialog
func NewManageDialog(s ProductStore, localization *Localization, window fyne.Window, logger *logrus.Entry, onClosed func()) *ManageDialog {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	md := &ManageDialog{
		store:        s,
		localization: localization,
		window:       window,
		log:          logger.WithField("component", "manage"),
		onClosed:     onClosed,
		editing:      -1,
	}
	md.createUI()
	return md
}

// Show reloads the lists and displays the dialog
func (md *ManageDialog) Show() {
	md.reload()
	md.dialog.Show()
}

// Categories returns the categories currently listed
func (md *ManageDialog) Categories() []model.Category {
	return md.categories
}

// Products returns the products currently listed
func (md *ManageDialog) Products() []model.ProductItem {
	return md.products
}

// createUI creates the tabs for products and categories
func (md *ManageDialog) createUI() {
	l := md.localization

	md.productList = widget.NewList(
		func() int { return len(md.products) },
		md.createRow,
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id >= len(md.products) {
				return
			}
			p := md.products[id]
			index := id
			text := strings.Join([]string{p.Category, p.Name, p.GetDisplayDescription(), p.Price}, MiddleDotSeparator)
			md.updateRow(obj, text, func() {
				md.RemoveProduct(index)
			})
		},
	)
	md.productList.OnSelected = md.EditProduct

	md.categoryList = widget.NewList(
		func() int { return len(md.categories) },
		md.createRow,
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id >= len(md.categories) {
				return
			}
			c := md.categories[id]
			md.updateRow(obj, c.String(), func() {
				md.RemoveCategory(c)
			})
		},
	)

	md.categorySelect = widget.NewSelect(nil, nil)
	md.categorySelect.PlaceHolder = l.GetText(KeyCategory)
	md.nameEntry = widget.NewEntry()
	md.nameEntry.SetPlaceHolder(l.GetText(KeyName))
	md.descEntry = widget.NewEntry()
	md.descEntry.SetPlaceHolder(l.GetText(KeyDescription))
	md.priceEntry = widget.NewEntry()
	md.priceEntry.SetPlaceHolder(l.GetText(KeyPrice))
	md.priceEntry.OnSubmitted = func(string) { md.AddProductFromForm() }

	addProductBtn := widget.NewButtonWithIcon(l.GetText(KeyAddProduct), theme.ContentAddIcon(), md.AddProductFromForm)
	addProductBtn.Importance = widget.HighImportance
	md.saveProductBtn = widget.NewButtonWithIcon(l.GetText(KeySave), theme.DocumentSaveIcon(), md.UpdateProductFromForm)
	md.saveProductBtn.Disable()

	productForm := container.NewVBox(
		container.NewGridWithColumns(2, md.categorySelect, md.nameEntry),
		container.NewGridWithColumns(2, md.descEntry, md.priceEntry),
		container.NewGridWithColumns(2, addProductBtn, md.saveProductBtn),
	)
	productsTab := container.NewBorder(nil, productForm, nil, nil, md.productList)

	md.categoryEntry = widget.NewEntry()
	md.categoryEntry.SetPlaceHolder(l.GetText(KeyCategory))
	md.categoryEntry.OnSubmitted = func(string) { md.AddCategoryFromForm() }
	addCategoryBtn := widget.NewButtonWithIcon(l.GetText(KeyAddCategory), theme.ContentAddIcon(), md.AddCategoryFromForm)
	categoryForm := container.NewBorder(nil, nil, nil, addCategoryBtn, md.categoryEntry)
	categoriesTab := container.NewBorder(nil, categoryForm, nil, nil, md.categoryList)

	tabs := container.NewAppTabs(
		container.NewTabItem(l.GetText(KeyProducts), productsTab),
		container.NewTabItem(l.GetText(KeyCategories), categoriesTab),
	)

	md.dialog = dialog.NewCustom(l.GetText(KeyManageProducts), l.GetText(KeyClose), tabs, md.window)
	md.dialog.SetOnClosed(func() {
		if md.onClosed != nil {
			md.onClosed()
		}
	})
	md.dialog.Resize(fyne.NewSize(ManageDialogWidth, ManageDialogHeight))
}

// createRow creates a list row template: text with a remove button on the right
func (md *ManageDialog) createRow() fyne.CanvasObject {
	label := widget.NewLabel("")
	label.Truncation = fyne.TextTruncateEllipsis
	removeBtn := widget.NewButtonWithIcon("", theme.DeleteIcon(), nil)
	removeBtn.Importance = widget.LowImportance
	return container.NewBorder(nil, nil, nil, removeBtn, label)
}

func (md *ManageDialog) updateRow(obj fyne.CanvasObject, text string, onRemove func()) {
	row, ok := obj.(*fyne.Container)
	if !ok {
		return
	}
	for _, o := range row.Objects {
		switch w := o.(type) {
		case *widget.Label:
			w.SetText(text)
		case *widget.Button:
			w.OnTapped = onRemove
		}
	}
}

func (md *ManageDialog) productFromForm() model.ProductItem {
	return model.ProductItem{
		Category:    md.categorySelect.Selected,
		Name:        strings.TrimSpace(md.nameEntry.Text),
		Description: strings.TrimSpace(md.descEntry.Text),
		Price:       strings.TrimSpace(md.priceEntry.Text),
	}
}

// clearForm empties the product form and leaves edit mode
func (md *ManageDialog) clearForm() {
	md.nameEntry.SetText("")
	md.descEntry.SetText("")
	md.priceEntry.SetText("")
	md.editing = -1
	md.saveProductBtn.Disable()
	md.productList.UnselectAll()
}

// AddProductFromForm validates the form, appends the product and clears the form
func (md *ManageDialog) AddProductFromForm() {
	p := md.productFromForm()
	if err := md.store.AddProduct(p); err != nil {
		md.showError(err)
		return
	}
	md.log.Infof("Added product %q to %q", p.Name, p.Category)

	md.clearForm()
	md.reload()
}

// EditProduct loads the product at index into the form
func (md *ManageDialog) EditProduct(index int) {
	if index < 0 || index >= len(md.products) {
		return
	}
	p := md.products[index]
	md.editing = index
	// Set directly so categories missing from the options are kept
	md.categorySelect.Selected = p.Category
	md.categorySelect.Refresh()
	md.nameEntry.SetText(p.Name)
	md.descEntry.SetText(p.Description)
	md.priceEntry.SetText(p.Price)
	md.saveProductBtn.Enable()
}

// UpdateProductFromForm writes the form back over the product being edited
func (md *ManageDialog) UpdateProductFromForm() {
	if md.editing < 0 {
		return
	}
	p := md.productFromForm()
	if err := md.store.UpdateProduct(md.editing, p); err != nil {
		md.showError(err)
		return
	}
	md.log.Infof("Updated product %q in %q", p.Name, p.Category)

	md.clearForm()
	md.reload()
}

// AddCategoryFromForm appends the entered category
func (md *ManageDialog) AddCategoryFromForm() {
	c := model.Category(strings.TrimSpace(md.categoryEntry.Text))
	if err := md.store.AddCategory(c); err != nil {
		md.showError(err)
		return
	}
	md.log.Infof("Added category %q", c)

	md.categoryEntry.SetText("")
	md.reload()
}

// RemoveProduct deletes the product at index
func (md *ManageDialog) RemoveProduct(index int) {
	if err := md.store.RemoveProduct(index); err != nil {
		md.showError(err)
		return
	}
	if md.editing >= 0 {
		md.clearForm()
	}
	md.reload()
}

// RemoveCategory deletes a category together with its products
func (md *ManageDialog) RemoveCategory(c model.Category) {
	if err := md.store.RemoveCategory(c); err != nil {
		md.showError(err)
		return
	}
	md.log.Infof("Removed category %q", c)
	md.reload()
}

// reload re-reads both files into the lists
func (md *ManageDialog) reload() {
	categories, err := md.store.LoadCategories()
	if err != nil {
		md.showError(err)
	}
	products, err := md.store.LoadProducts()
	if err != nil {
		md.showError(err)
	}

	md.categories = categories.Categories
	md.products = products.Products

	options := make([]string, 0, len(md.categories))
	for _, c := range md.categories {
		options = append(options, c.String())
	}
	md.categorySelect.SetOptions(options)

	md.categoryList.Refresh()
	md.productList.Refresh()
}

func (md *ManageDialog) showError(err error) {
	md.log.WithError(err).Warn("Catalog edit failed")
	dialog.ShowError(err, md.window)
}
