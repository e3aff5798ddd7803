package domain

// BranchWithTopProduct es la vista derivada de una sucursal junto con su
// producto de mayor stock. TopProduct es nil cuando la sucursal no tiene
// productos.
type BranchWithTopProduct struct {
	Branch
	TopProduct *Product
}

type FranchiseWithTopProducts struct {
	Franchise Franchise
	Branches  []BranchWithTopProduct
}
