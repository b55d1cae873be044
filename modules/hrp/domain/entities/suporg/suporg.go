package suporg

// SupervisoryOrganization is the unit a position reports into.
type SupervisoryOrganization struct {
	budgetCode string
	orgCode    string
	orgName    string
}

func New(budgetCode, orgCode, orgName string) SupervisoryOrganization {
	return SupervisoryOrganization{
		budgetCode: budgetCode,
		orgCode:    orgCode,
		orgName:    orgName,
	}
}

func (o SupervisoryOrganization) BudgetCode() string { return o.budgetCode }
func (o SupervisoryOrganization) OrgCode() string    { return o.orgCode }
func (o SupervisoryOrganization) OrgName() string    { return o.orgName }

func (o SupervisoryOrganization) IsZero() bool {
	return o.budgetCode == "" && o.orgCode == "" && o.orgName == ""
}
