package server

import (
	"encoding/json"
	"errors"

	"github.com/kiltia/showroom"

	"github.com/gofiber/fiber/v2"
)

const currentLayoutSection = "current-layout"

type currentLayoutBody struct {
	CurrentLayout showroom.LayoutType `json:"currentLayout"`
}

type customizationBody struct {
	Value *string `json:"value"`
}

type importResult struct {
	Imported bool `json:"imported"`
}

func healthHandler(c *fiber.Ctx) error {
	return c.SendString("ok")
}

func getConfiguration(c *fiber.Ctx) error {
	store := showroom.MustFromContext(c.UserContext())
	return c.JSON(store.Configuration())
}

func patchConfiguration(c *fiber.Ctx) error {
	store := showroom.MustFromContext(c.UserContext())
	var patch showroom.ConfigurationPatch
	if err := json.Unmarshal(c.Body(), &patch); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "malformed configuration patch: "+err.Error())
	}
	store.UpdateConfiguration(patch)
	return c.JSON(store.Configuration())
}

func getSection(c *fiber.Ctx) error {
	store := showroom.MustFromContext(c.UserContext())
	name := c.Params("section")
	if name == currentLayoutSection {
		return c.JSON(currentLayoutBody{CurrentLayout: store.CurrentLayout()})
	}
	section, err := showroom.ParseSection(name)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}
	return c.JSON(sectionValue(store.Configuration(), section))
}

func patchSection(c *fiber.Ctx) error {
	store := showroom.MustFromContext(c.UserContext())
	section, err := showroom.ParseSection(c.Params("section"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}
	patch, err := showroom.DecodeSectionPatch(section, c.Body())
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := showroom.NewControls(store).ApplySectionPatch(section, patch); err != nil {
		return err
	}
	return c.JSON(sectionValue(store.Configuration(), section))
}

func putCurrentLayout(c *fiber.Ctx) error {
	store := showroom.MustFromContext(c.UserContext())
	var body currentLayoutBody
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "malformed body: "+err.Error())
	}
	layout, err := showroom.Parse(showroom.Layouts, body.CurrentLayout)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	showroom.NewControls(store).Layout().SwitchLayout(layout)
	return c.JSON(currentLayoutBody{CurrentLayout: store.CurrentLayout()})
}

func resetConfiguration(c *fiber.Ctx) error {
	store := showroom.MustFromContext(c.UserContext())
	store.Reset()
	return c.JSON(store.Configuration())
}

func exportConfiguration(c *fiber.Ctx) error {
	manager := showroom.NewControls(showroom.MustFromContext(c.UserContext())).Manager()
	name, doc, err := manager.ExportFile()
	if err != nil {
		return err
	}
	c.Attachment(name)
	c.Set(fiber.HeaderContentType, showroom.MediaType)
	return c.SendString(doc)
}

func importConfiguration(c *fiber.Ctx) error {
	store := showroom.MustFromContext(c.UserContext())
	if !store.ImportConfiguration(string(c.Body())) {
		ImportsTotal.WithLabelValues("rejected").Inc()
		return c.Status(fiber.StatusUnprocessableEntity).JSON(importResult{Imported: false})
	}
	ImportsTotal.WithLabelValues("imported").Inc()
	return c.JSON(importResult{Imported: true})
}

func changeCustomization(c *fiber.Ctx) error {
	product := showroom.NewControls(showroom.MustFromContext(c.UserContext())).Product()
	var body customizationBody
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "malformed body: "+err.Error())
	}
	if body.Value == nil {
		return fiber.NewError(fiber.StatusBadRequest, "value is required")
	}
	if err := product.OnCustomizationChange(c.Params("option"), *body.Value); err != nil {
		if errors.Is(err, showroom.ErrUnknownOption) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return err
	}
	return c.JSON(product.Customization())
}

func getCatalog(c *fiber.Ctx) error {
	return c.JSON(showroom.DefaultCatalog())
}

func sectionValue(cfg showroom.Configuration, section showroom.Section) any {
	switch section {
	case showroom.SectionTypography:
		return cfg.Typography
	case showroom.SectionButton:
		return cfg.Button
	case showroom.SectionGallery:
		return cfg.Gallery
	case showroom.SectionLayout:
		return cfg.Layout
	case showroom.SectionStroke:
		return cfg.Stroke
	case showroom.SectionProduct:
		return cfg.Product
	}
	return nil
}
