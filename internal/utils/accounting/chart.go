package accounting

import "github.com/SscSPs/contabilidad_app/internal/core/domain"

// DefaultChart returns the chart of accounts a new ledger starts with.
// The same catalogue is seeded by the database migrations.
func DefaultChart() []domain.Account {
	return []domain.Account{
		// Current assets
		{AccountID: 1, Name: "Bancos", Class: domain.Asset, Type: domain.TypeCurrent, CashFlowBucket: domain.BucketCashBank},
		{AccountID: 2, Name: "Caja", Class: domain.Asset, Type: domain.TypeCurrent, CashFlowBucket: domain.BucketCashOnHand},
		{AccountID: 3, Name: "Clientes", Class: domain.Asset, Type: domain.TypeCurrent, CashFlowBucket: domain.BucketApplication},
		{AccountID: 4, Name: "Mercancias", Class: domain.Asset, Type: domain.TypeCurrent, CashFlowBucket: domain.BucketApplication},
		{AccountID: 5, Name: "IVA acreditable", Class: domain.Asset, Type: domain.TypeCurrent, CashFlowBucket: domain.BucketApplication},
		{AccountID: 6, Name: "IVA por acreditar", Class: domain.Asset, Type: domain.TypeCurrent, CashFlowBucket: domain.BucketApplication},
		{AccountID: 7, Name: "Renta pagada por anticipado", Class: domain.Asset, Type: domain.TypeCurrent, CashFlowBucket: domain.BucketApplication},
		{AccountID: 8, Name: "Papeleria", Class: domain.Asset, Type: domain.TypeCurrent, CashFlowBucket: domain.BucketApplication},

		// Non-current assets
		{AccountID: 9, Name: "Terrenos", Class: domain.Asset, Type: domain.TypeNonCurrent, CashFlowBucket: domain.BucketApplication, FixedAssetKey: domain.FixedAssetLand},
		{AccountID: 10, Name: "Edificios", Class: domain.Asset, Type: domain.TypeNonCurrent, CashFlowBucket: domain.BucketApplication, FixedAssetKey: domain.FixedAssetBuildings},
		{AccountID: 11, Name: "Depreciación acumulada (edificios)", Class: domain.Asset, Type: domain.TypeNonCurrent, CashFlowBucket: domain.BucketDepreciation, FixedAssetKey: domain.FixedAssetAccumDepBuildings},
		{AccountID: 12, Name: "Mobiliario y equipo", Class: domain.Asset, Type: domain.TypeNonCurrent, CashFlowBucket: domain.BucketApplication, FixedAssetKey: domain.FixedAssetFurniture},
		{AccountID: 13, Name: "Depreciación acumulada (mobiliario y equipo)", Class: domain.Asset, Type: domain.TypeNonCurrent, CashFlowBucket: domain.BucketDepreciation, FixedAssetKey: domain.FixedAssetAccumDepFurniture},
		{AccountID: 14, Name: "Equipo de computo", Class: domain.Asset, Type: domain.TypeNonCurrent, CashFlowBucket: domain.BucketApplication, FixedAssetKey: domain.FixedAssetComputers},
		{AccountID: 15, Name: "Depreciación acumulada (equipo de cómputo)", Class: domain.Asset, Type: domain.TypeNonCurrent, CashFlowBucket: domain.BucketDepreciation, FixedAssetKey: domain.FixedAssetAccumDepComputers},

		// Liabilities
		{AccountID: 16, Name: "Proveedores", Class: domain.Liability, Type: domain.TypeCurrent},
		{AccountID: 17, Name: "Acreedores", Class: domain.Liability, Type: domain.TypeCurrent, CashFlowBucket: domain.BucketFinancing},
		{AccountID: 18, Name: "Documentos por pagar", Class: domain.Liability, Type: domain.TypeNonCurrent, CashFlowBucket: domain.BucketFinancing},
		{AccountID: 19, Name: "IVA trasladado", Class: domain.Liability, Type: domain.TypeCurrent, CashFlowBucket: domain.BucketApplication},
		{AccountID: 20, Name: "IVA por trasladar", Class: domain.Liability, Type: domain.TypeCurrent, CashFlowBucket: domain.BucketApplication},

		// Equity
		{AccountID: 21, Name: "Capital social", Class: domain.Equity, Type: domain.TypeInitialCapital, CashFlowBucket: domain.BucketFinancing},
		{AccountID: 22, Name: "Aportaciones para futuros aumentos de capital", Class: domain.Equity},

		// Results
		{AccountID: 23, Name: "Ventas", Class: domain.Revenue},
		{AccountID: 24, Name: "Costo de ventas", Class: domain.Cost},
		{AccountID: 25, Name: "Renta", Class: domain.Expense},
		{AccountID: 26, Name: "Gastos de administración", Class: domain.Expense},
		{AccountID: 27, Name: "Gastos de venta", Class: domain.Expense},
		{AccountID: 28, Name: "Depreciación del ejercicio", Class: domain.Expense},
	}
}
