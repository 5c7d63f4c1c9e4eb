package formschema

// SystemFields returns the built-in fields of an entity. Their positions
// leave room for custom fields in between.
func SystemFields(entity string, towers []Tower) []Field {
	switch entity {
	case EntityTenant:
		return []Field{
			Text{Base{Key: "name", Label: "Name", Category: "Profile", Required: true, Position: 10, System: true}},
			Text{Base{Key: "email", Label: "Email", Category: "Contact", Position: 100, System: true}},
			Text{Base{Key: "phone", Label: "Phone", Category: "Contact", Position: 110, System: true}},
			Text{Base{Key: "gstin", Label: "GSTIN", Category: "Compliance", Position: 200, System: true}},
		}
	case EntityUnit:
		return []Field{
			Text{Base{Key: "code", Label: "Unit code", Category: "Unit", Required: true, Position: 10, System: true}},
			TowerFloor{Base: Base{Key: "location", Label: "Tower / Floor", Category: "Unit", Required: true, Position: 20, System: true}, Towers: towers},
			Number{Base{Key: "area_sqft", Label: "Area (sq ft)", Category: "Unit", Required: true, Position: 30, System: true}},
		}
	case EntityLease:
		return []Field{
			Date{Base{Key: "start_date", Label: "Start date", Category: "Term", Required: true, Position: 10, System: true}},
			Date{Base{Key: "end_date", Label: "End date", Category: "Term", Position: 20, System: true}},
			Number{Base{Key: "monthly_rent", Label: "Monthly rent", Category: "Charges", Required: true, Position: 100, System: true}},
			Number{Base{Key: "cam_rate", Label: "CAM rate per sq ft", Category: "Charges", Position: 110, System: true}},
		}
	}

	return nil
}
