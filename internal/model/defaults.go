package model

import "github.com/shopspring/decimal"

// Factory seed data for a fresh install, mirroring the shop's launch menu.
// Operators edit these through the catalog endpoints afterwards.

func d(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

func dp(f float64) *decimal.Decimal {
	v := decimal.NewFromFloat(f)
	return &v
}

// DefaultKitchenRules returns the static production rule set.
func DefaultKitchenRules() []KitchenProductionRule {
	return []KitchenProductionRule{
		{
			Name:               "Cocinar Pollos (Por Unidad)",
			Outputs:            ProductionOutput{StockLogChicken: d(1)},
			CookingTimeMinutes: 45,
			Inputs: []RecipeItem{
				{InventoryID: "inv_pollo_crudo", Quantity: d(1)},
				{InventoryID: "inv_condimento_pollo", Quantity: d(0.05)},
				{InventoryID: "inv_harina", Quantity: d(0.1)},
				{InventoryID: "inv_aceite", Quantity: d(0.15)},
			},
		},
		{
			Name:               "Preparar Llajua (Por Litro)",
			Outputs:            ProductionOutput{InventoryID: "inv_salsa_picante", Quantity: d(1)},
			CookingTimeMinutes: 15,
			Inputs: []RecipeItem{
				{InventoryID: "inv_tomate", Quantity: d(0.8)},
				{InventoryID: "inv_locoto", Quantity: d(0.1)},
				{InventoryID: "inv_quirquina", Quantity: d(0.5)},
				{InventoryID: "inv_sal", Quantity: d(0.01)},
			},
		},
		{
			Name:               "Freír Papas (Por Kilo)",
			Outputs:            ProductionOutput{},
			CookingTimeMinutes: 12,
			Inputs: []RecipeItem{
				{InventoryID: "inv_papas_cong", Quantity: d(1)},
				{InventoryID: "inv_aceite", Quantity: d(0.1)},
				{InventoryID: "inv_sal", Quantity: d(0.02)},
			},
		},
		{
			Name:               "Cocinar Olla Arroz (Por Kilo Grano)",
			Outputs:            ProductionOutput{},
			CookingTimeMinutes: 25,
			Inputs: []RecipeItem{
				{InventoryID: "inv_arroz", Quantity: d(1)},
				{InventoryID: "inv_aceite", Quantity: d(0.05)},
				{InventoryID: "inv_sal", Quantity: d(0.03)},
			},
		},
	}
}

// DefaultInventory returns the factory raw-material catalog.
func DefaultInventory() []InventoryItem {
	return []InventoryItem{
		{ID: "inv_pollo_crudo", Name: "Pollo Crudo (Entero)", Category: "Insumo", Quantity: d(20), Unit: "unid", MinThreshold: d(5)},
		{ID: "inv_papas_cong", Name: "Papas Congeladas", Category: "Insumo", Quantity: d(20), Unit: "kg", MinThreshold: d(5)},
		{ID: "inv_nuggets_cong", Name: "Nuggets Congelados", Category: "Insumo", Quantity: d(5), Unit: "kg", MinThreshold: d(1)},
		{ID: "inv_fingers_cong", Name: "Fingers Crudos", Category: "Insumo", Quantity: d(30), Unit: "unid", MinThreshold: d(10)},
		{ID: "inv_salchicha", Name: "Salchichas", Category: "Insumo", Quantity: d(5), Unit: "kg", MinThreshold: d(1)},
		{ID: "inv_arroz", Name: "Arroz Grano", Category: "Insumo", Quantity: d(10), Unit: "kg", MinThreshold: d(2)},
		{ID: "inv_platano", Name: "Plátano Crudo", Category: "Insumo", Quantity: d(30), Unit: "unid", MinThreshold: d(10)},
		{ID: "inv_tomate", Name: "Tomate", Category: "Insumo", Quantity: d(5), Unit: "kg", MinThreshold: d(1)},
		{ID: "inv_locoto", Name: "Locoto", Category: "Insumo", Quantity: d(2), Unit: "kg", MinThreshold: d(0.5)},
		{ID: "inv_quirquina", Name: "Quirquiña", Category: "Insumo", Quantity: d(5), Unit: "paq", MinThreshold: d(1)},
		{ID: "inv_aceite", Name: "Aceite", Category: "Insumo", Quantity: d(20), Unit: "lt", MinThreshold: d(5)},
		{ID: "inv_sal", Name: "Sal", Category: "Insumo", Quantity: d(5), Unit: "kg", MinThreshold: d(1)},
		{ID: "inv_condimento_pollo", Name: "Condimento Pollo", Category: "Insumo", Quantity: d(5), Unit: "kg", MinThreshold: d(1)},
		{ID: "inv_harina", Name: "Harina/Rebozador", Category: "Insumo", Quantity: d(10), Unit: "kg", MinThreshold: d(2)},
		{ID: "inv_soda_personal", Name: "Soda Personal (Llena)", Category: "Bebida", Quantity: d(48), Unit: "unid", MinThreshold: d(12)},
		{ID: "inv_soda_popular", Name: "Soda Popular (Llena)", Category: "Bebida", Quantity: d(24), Unit: "unid", MinThreshold: d(6)},
		{ID: "inv_soda_litro", Name: "Soda 1 Litro (Llena)", Category: "Bebida", Quantity: d(12), Unit: "unid", MinThreshold: d(4)},
		{ID: "inv_soda_litro_medio", Name: "Soda 1.5 Litros (Llena)", Category: "Bebida", Quantity: d(12), Unit: "unid", MinThreshold: d(4)},
		{ID: "inv_frutall_litro", Name: "Frut-all Litro", Category: "Bebida", Quantity: d(10), Unit: "unid", MinThreshold: d(2)},
		{ID: "inv_frutall_p", Name: "Frut-all Personal", Category: "Bebida", Quantity: d(20), Unit: "unid", MinThreshold: d(5)},
		{ID: "inv_salsa_picante", Name: "Llajua (Preparada)", Category: "Salsa", Quantity: d(2), Unit: "lt", MinThreshold: d(0.5)},
		{ID: "inv_plato_grande", Name: "Plato Desechable Grande", Category: "Desechable", Quantity: d(100), Unit: "unid", MinThreshold: d(20)},
		{ID: "inv_plato_chico", Name: "Plato Desechable Chico", Category: "Desechable", Quantity: d(100), Unit: "unid", MinThreshold: d(20)},
		{ID: "inv_vasos", Name: "Vasos Desechables", Category: "Desechable", Quantity: d(200), Unit: "unid", MinThreshold: d(50)},
		{ID: "inv_servilletas", Name: "Servilletas (Sueltas)", Category: "Desechable", Quantity: d(500), Unit: "unid", MinThreshold: d(50)},
	}
}

// defaultSides is the shared side-option list for plated dishes.
func defaultSides() []SideOption {
	return []SideOption{
		{ID: "opt_completo", Name: "Completo (Arroz, Papa, Plátano)", Recipe: []RecipeItem{
			{InventoryID: "inv_arroz", Quantity: d(0.08)},
			{InventoryID: "inv_papas_cong", Quantity: d(0.15)},
			{InventoryID: "inv_platano", Quantity: d(1)},
		}},
		{ID: "opt_canasta", Name: "Canasta (Papa, Plátano)", Recipe: []RecipeItem{
			{InventoryID: "inv_papas_cong", Quantity: d(0.25)},
			{InventoryID: "inv_platano", Quantity: d(1)},
		}},
		{ID: "opt_solo_papa", Name: "Solo Papa", Recipe: []RecipeItem{
			{InventoryID: "inv_papas_cong", Quantity: d(0.35)},
		}},
		{ID: "opt_solo_arroz", Name: "Solo Arroz", Recipe: []RecipeItem{
			{InventoryID: "inv_arroz", Quantity: d(0.25)},
		}},
		{ID: "opt_sin_platano", Name: "Sin Plátano (Arroz, Papa)", Recipe: []RecipeItem{
			{InventoryID: "inv_arroz", Quantity: d(0.1)},
			{InventoryID: "inv_papas_cong", Quantity: d(0.2)},
		}},
	}
}

// DefaultMenu returns the factory product catalog.
func DefaultMenu() []Product {
	return []Product{
		{
			ID: "c_pollo_simple", Name: "Pollo Simple", Price: d(22), Category: "Comida",
			Subcategory: "Pollo", StockCost: dp(1), PlateSize: PlateLarge, SideOptions: defaultSides(),
		},
		{
			ID: "c_pollo_doble", Name: "Pollo Doble", Price: d(34), Category: "Comida",
			Subcategory: "Pollo", StockCost: dp(2), PlateSize: PlateLarge, SideOptions: defaultSides(),
			Variants: []ProductVariant{
				{ID: "v_pd_clasico", Name: "Clásico (Pierna+Entrepierna)", Price: d(34), StockCost: dp(2)},
				{ID: "v_pd_supremo", Name: "Supremo (Ala+Pecho)", Price: d(36), StockCost: dp(2)},
				{ID: "v_pd_familiar", Name: "Familiar (A elección)", Price: d(38), StockCost: dp(2)},
			},
		},
		{
			ID: "c_fingers", Name: "Fingers", Price: d(35), Category: "Comida",
			Subcategory: "Fingers", StockCost: dp(0), PlateSize: PlateSmall, SideOptions: defaultSides(),
			Variants: []ProductVariant{
				{ID: "v_fingers_6", Name: "6 Unidades", Price: d(35)},
				{ID: "v_fingers_9", Name: "9 Unidades", Price: d(45)},
				{ID: "v_fingers_12", Name: "12 Unidades", Price: d(55)},
			},
			Recipe: []RecipeItem{{InventoryID: "inv_fingers_cong", Quantity: d(6)}},
		},
		{
			ID: "c_nuggets", Name: "Nuggets", Price: d(25), Category: "Comida",
			Subcategory: "Nuggets", StockCost: dp(0), PlateSize: PlateSmall, SideOptions: defaultSides(),
			Variants: []ProductVariant{
				{ID: "v_nuggets_6", Name: "6 Unidades", Price: d(25)},
				{ID: "v_nuggets_9", Name: "9 Unidades", Price: d(35)},
				{ID: "v_nuggets_12", Name: "12 Unidades", Price: d(45)},
			},
		},
		{
			ID: "c_salchi", Name: "Salchipapa", Price: d(20), Category: "Comida",
			Subcategory: "Salchipapa", StockCost: dp(0), PlateSize: PlateLarge,
			Variants: []ProductVariant{
				{ID: "v_salchi_nor", Name: "Normal", Price: d(20)},
				{ID: "v_salchi_esp", Name: "Especial", Price: d(25)},
			},
			Recipe: []RecipeItem{
				{InventoryID: "inv_salchicha", Quantity: d(0.2)},
				{InventoryID: "inv_papas_cong", Quantity: d(0.3)},
			},
		},
		{
			ID: "b_personal", Name: "Refresco Personal", Price: d(3), Category: "Bebida",
			Recipe: []RecipeItem{{InventoryID: "inv_soda_personal", Quantity: d(1)}},
		},
		{
			ID: "b_popular", Name: "Refresco Popular", Price: d(8), Category: "Bebida",
			Recipe: []RecipeItem{{InventoryID: "inv_soda_popular", Quantity: d(1)}},
		},
		{
			ID: "b_litro", Name: "Refresco Litro", Price: d(12), Category: "Bebida",
			Recipe: []RecipeItem{{InventoryID: "inv_soda_litro", Quantity: d(1)}},
		},
		{
			ID: "b_litro_medio", Name: "Refresco 1.5 Litros", Price: d(16), Category: "Bebida",
			Recipe: []RecipeItem{{InventoryID: "inv_soda_litro_medio", Quantity: d(1)}},
		},
		{
			ID: "e_papa", Name: "Porción Papa", Price: d(15), Category: "Extra", PlateSize: PlateSmall,
			Recipe: []RecipeItem{{InventoryID: "inv_papas_cong", Quantity: d(0.3)}},
		},
		{
			ID: "e_arroz", Name: "Porción Arroz", Price: d(15), Category: "Extra", PlateSize: PlateSmall,
			Recipe: []RecipeItem{{InventoryID: "inv_arroz", Quantity: d(0.08)}},
		},
		{
			ID: "e_platano", Name: "Porción Plátano", Price: d(15), Category: "Extra", PlateSize: PlateSmall,
			Recipe: []RecipeItem{{InventoryID: "inv_platano", Quantity: d(1)}},
		},
		{
			ID: "e_corte", Name: "Corte / Yapa", Price: d(0), Category: "Extra", IsByproduct: true,
		},
	}
}

// DefaultSnapshot assembles a factory-reset state.
func DefaultSnapshot() Snapshot {
	return Snapshot{
		Sales:      []Sale{},
		Expenses:   []Expense{},
		Products:   DefaultMenu(),
		Inventory:  DefaultInventory(),
		StockLogs:  []StockLog{},
		GlobalCash: decimal.Zero,
		Drafts:     []SaleDraft{},
		Version:    SnapshotVersion,
	}
}
