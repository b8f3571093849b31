package employee

import (
	"context"
	"log/slog"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/staffhive/erp-backend-go/internal/domain/audit"
	"github.com/staffhive/erp-backend-go/internal/domain/employee"
	"github.com/staffhive/erp-backend-go/internal/domain/leave"
	"github.com/staffhive/erp-backend-go/internal/domain/master"
	"github.com/staffhive/erp-backend-go/internal/pkg/database"
	"github.com/staffhive/erp-backend-go/internal/pkg/validator"
	"github.com/staffhive/erp-backend-go/internal/repository/postgresql"
)

type EmployeeServiceImpl struct {
	db           *database.DB
	employeeRepo employee.EmployeeRepository
	childRepo    employee.ChildRepository
	lookupRepo   master.LookupRepository
	balanceRepo  leave.LeaveBalanceRepository
	auditor      audit.Recorder
}

func NewEmployeeService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	childRepo employee.ChildRepository,
	lookupRepo master.LookupRepository,
	balanceRepo leave.LeaveBalanceRepository,
	auditor audit.Recorder,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:           db,
		employeeRepo: employeeRepo,
		childRepo:    childRepo,
		lookupRepo:   lookupRepo,
		balanceRepo:  balanceRepo,
		auditor:      auditor,
	}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}

func mapEmployeeToResponse(emp employee.Employee, names lookupNames) employee.EmployeeResponse {
	resp := employee.EmployeeResponse{
		ID:               emp.ID,
		EmployeeCode:     emp.EmployeeCode,
		FirstName:        emp.FirstName,
		LastName:         emp.LastName,
		Email:            emp.Email,
		PersonalEmail:    emp.PersonalEmail,
		PhoneNumber:      emp.PhoneNumber,
		Gender:           emp.Gender,
		DOB:              formatDate(emp.DOB),
		DOJ:              formatDate(emp.DOJ),
		DesignationID:    emp.DesignationID,
		RoleID:           emp.RoleID,
		StatusID:         emp.StatusID,
		Active:           emp.Active,
		PermanentAddress: emp.PermanentAddress,
		CurrentAddress:   emp.TempAddress,
		City:             emp.City,
		State:            emp.State,
		Pincode:          emp.Pincode,
		CreatedAt:        emp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        emp.UpdatedAt.Format(time.RFC3339),
	}
	resp.DesignationName = names.lookup(names.designations, emp.DesignationID)
	resp.RoleName = names.lookup(names.roles, emp.RoleID)
	resp.StatusName = names.lookup(names.statuses, emp.StatusID)
	return resp
}

// lookupNames holds the id -> name maps used to enrich responses. Missing
// maps (a failed fetch) just leave names blank.
type lookupNames struct {
	designations map[int64]string
	roles        map[int64]string
	statuses     map[int64]string
	allowances   map[int64]string
}

func (lookupNames) lookup(m map[int64]string, id *int64) *string {
	if id == nil || m == nil {
		return nil
	}
	if name, ok := m[*id]; ok {
		return &name
	}
	return nil
}

func (s *EmployeeServiceImpl) loadLookupNames(ctx context.Context) lookupNames {
	var names lookupNames
	for _, pair := range []struct {
		kind master.Kind
		dst  *map[int64]string
	}{
		{master.KindDesignation, &names.designations},
		{master.KindRole, &names.roles},
		{master.KindEmployeeStatus, &names.statuses},
		{master.KindAllowanceType, &names.allowances},
	} {
		m, err := s.lookupRepo.NameMap(ctx, pair.kind)
		if err != nil {
			slog.Warn("failed to load lookup names", "kind", pair.kind, "error", err)
			continue
		}
		*pair.dst = m
	}
	return names
}

// GetEmployee assembles the aggregate document. The parent row must exist;
// each child collection is fetched concurrently and degrades to an empty
// slice on failure so one broken collection does not take down the whole
// document.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id int64) (employee.EmployeeDetailResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeDetailResponse{}, err
	}

	var (
		contacts   []employee.EmergencyContact
		family     []employee.FamilyMember
		education  []employee.EducationRecord
		experience []employee.ExperienceRecord
		documents  []employee.Document
		banks      []employee.BankDetail
		salary     []employee.SalaryLine
		consents   []employee.ConsentForm
		balances   []leave.LeaveBalance
		names      lookupNames
	)

	fetch := func(what string, fn func() error) func() error {
		return func() error {
			if err := fn(); err != nil {
				slog.Warn("failed to load employee child collection",
					"employee_id", id, "collection", what, "error", err)
			}
			return nil
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(fetch("emergency_contacts", func() (err error) {
		contacts, err = s.childRepo.ListEmergencyContacts(gctx, id)
		return
	}))
	g.Go(fetch("family_members", func() (err error) {
		family, err = s.childRepo.ListFamilyMembers(gctx, id)
		return
	}))
	g.Go(fetch("education", func() (err error) {
		education, err = s.childRepo.ListEducation(gctx, id)
		return
	}))
	g.Go(fetch("experience", func() (err error) {
		experience, err = s.childRepo.ListExperience(gctx, id)
		return
	}))
	g.Go(fetch("documents", func() (err error) {
		documents, err = s.childRepo.ListDocuments(gctx, id)
		return
	}))
	g.Go(fetch("bank_details", func() (err error) {
		banks, err = s.childRepo.ListBankDetails(gctx, id)
		return
	}))
	g.Go(fetch("salary_lines", func() (err error) {
		salary, err = s.childRepo.ListSalaryLines(gctx, id)
		return
	}))
	g.Go(fetch("consent_forms", func() (err error) {
		consents, err = s.childRepo.ListConsentForms(gctx, id)
		return
	}))
	g.Go(fetch("leave_balances", func() (err error) {
		balances, err = s.balanceRepo.ListByEmployee(gctx, id, time.Now().Year())
		return
	}))
	g.Go(func() error {
		names = s.loadLookupNames(gctx)
		return nil
	})
	// Fetches never propagate errors, so Wait only synchronizes.
	_ = g.Wait()

	detail := employee.EmployeeDetailResponse{
		EmployeeResponse:  mapEmployeeToResponse(emp, names),
		EmergencyContacts: []employee.EmergencyContactResponse{},
		FamilyInfo:        []employee.FamilyMemberResponse{},
		Education:         []employee.EducationResponse{},
		Experience:        []employee.ExperienceResponse{},
		Documents:         []employee.DocumentResponse{},
		BankDetails:       []employee.BankDetailResponse{},
		SalaryDetails:     []employee.SalaryLineResponse{},
		ConsentForms:      []employee.ConsentFormResponse{},
		LeaveBalances:     []employee.LeaveBalanceSummary{},
	}

	for _, c := range contacts {
		detail.EmergencyContacts = append(detail.EmergencyContacts, employee.EmergencyContactResponse{
			ID: c.ID, Name: c.Name, Relationship: c.Relationship,
			ContactNumber: c.ContactNumber, Address: c.Address,
		})
	}
	for _, f := range family {
		detail.FamilyInfo = append(detail.FamilyInfo, employee.FamilyMemberResponse{
			ID: f.ID, Name: f.Name, Relationship: f.Relationship,
			DOB: formatDate(f.DOB), Occupation: f.Occupation,
		})
	}
	for _, e := range education {
		detail.Education = append(detail.Education, employee.EducationResponse{
			ID: e.ID, Institution: e.Institution, Degree: e.Degree,
			FieldOfStudy: e.FieldOfStudy, StartYear: e.StartYear, EndYear: e.EndYear, Grade: e.Grade,
		})
	}
	for _, x := range experience {
		detail.Experience = append(detail.Experience, employee.ExperienceResponse{
			ID: x.ID, CompanyName: x.CompanyName, Designation: x.Designation,
			StartDate: formatDate(x.StartDate), EndDate: formatDate(x.EndDate), Location: x.Location,
		})
	}
	for _, d := range documents {
		detail.Documents = append(detail.Documents, employee.DocumentResponse{
			ID: d.ID, Name: d.Name, FilePath: d.FilePath, IssuedDate: formatDate(d.IssuedDate),
		})
	}
	for _, b := range banks {
		detail.BankDetails = append(detail.BankDetails, employee.BankDetailResponse{
			ID: b.ID, BankName: b.BankName, AccountHolderName: b.AccountHolderName,
			AccountNumber: b.AccountNumber, IFSCCode: b.IFSCCode, Branch: b.Branch,
		})
	}
	for _, sl := range salary {
		line := employee.SalaryLineResponse{
			ID:              sl.ID,
			AllowanceTypeID: sl.AllowanceTypeID,
			Amount:          sl.Amount.StringFixed(2),
			EffectiveFrom:   formatDate(sl.EffectiveFrom),
		}
		line.AllowanceTypeName = names.lookup(names.allowances, &sl.AllowanceTypeID)
		detail.SalaryDetails = append(detail.SalaryDetails, line)
	}
	for _, cf := range consents {
		detail.ConsentForms = append(detail.ConsentForms, employee.ConsentFormResponse{
			ID: cf.ID, FormName: cf.FormName, SignedAt: formatDate(cf.SignedAt), FilePath: cf.FilePath,
		})
	}
	for _, b := range balances {
		name := ""
		if b.LeaveTypeName != nil {
			name = *b.LeaveTypeName
		}
		detail.LeaveBalances = append(detail.LeaveBalances, employee.LeaveBalanceSummary{
			LeaveTypeID:   b.LeaveTypeID,
			LeaveTypeName: name,
			Allocated:     b.Allocated,
			Used:          b.Used,
			Pending:       b.Pending,
			Remaining:     b.Remaining(),
		})
	}

	return detail, nil
}

func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	taken, err := s.employeeRepo.EmailTakenByOther(ctx, req.Email, 0)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if taken {
		return employee.EmployeeResponse{}, employee.ErrEmailExists
	}

	newEmployee := employee.Employee{
		EmployeeCode:  req.EmployeeCode,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		PersonalEmail: req.PersonalEmail,
		PhoneNumber:   req.PhoneNumber,
		Gender:        req.Gender,
		Active:        true,
	}
	if req.DOB != nil && *req.DOB != "" {
		if t, err := time.Parse("2006-01-02", *req.DOB); err == nil {
			newEmployee.DOB = &t
		}
	}
	if req.DOJ != nil && *req.DOJ != "" {
		if t, err := time.Parse("2006-01-02", *req.DOJ); err == nil {
			newEmployee.DOJ = &t
		}
	}
	newEmployee.DesignationID = parseID(req.DesignationID)
	newEmployee.RoleID = parseID(req.RoleID)
	newEmployee.StatusID = parseID(req.StatusID)

	created, err := s.employeeRepo.Create(ctx, newEmployee)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	s.auditor.Record(ctx, "employee", created.ID, audit.ActionCreate, map[string]interface{}{
		"email": created.Email,
	})

	return mapEmployeeToResponse(created, s.loadLookupNames(ctx)), nil
}

// UpdateEmployee applies the parent patch and the child upserts atomically.
// Any failure rolls the whole payload back.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	// The existence check also distinguishes 404 from later write failures.
	if _, err := s.employeeRepo.GetByID(ctx, req.ID); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.Email != nil && *req.Email != "" {
		taken, err := s.employeeRepo.EmailTakenByOther(ctx, *req.Email, req.ID)
		if err != nil {
			return employee.EmployeeResponse{}, err
		}
		if taken {
			return employee.EmployeeResponse{}, employee.ErrEmailExists
		}
	}

	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.employeeRepo.Update(txCtx, req); err != nil {
			return err
		}
		for _, in := range req.EmergencyContacts {
			if err := s.childRepo.UpsertEmergencyContact(txCtx, req.ID, in); err != nil {
				return err
			}
		}
		for _, in := range req.FamilyInfo {
			if err := s.childRepo.UpsertFamilyMember(txCtx, req.ID, in); err != nil {
				return err
			}
		}
		for _, in := range req.Education {
			if err := s.childRepo.UpsertEducation(txCtx, req.ID, in); err != nil {
				return err
			}
		}
		for _, in := range req.Experience {
			if err := s.childRepo.UpsertExperience(txCtx, req.ID, in); err != nil {
				return err
			}
		}
		for _, in := range req.Documents {
			if err := s.childRepo.UpsertDocument(txCtx, req.ID, in); err != nil {
				return err
			}
		}
		for _, in := range req.BankDetails {
			if err := s.childRepo.UpsertBankDetail(txCtx, req.ID, in); err != nil {
				return err
			}
		}
		for _, in := range req.SalaryDetails {
			if err := s.childRepo.UpsertSalaryLine(txCtx, req.ID, in); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	s.auditor.Record(ctx, "employee", req.ID, audit.ActionUpdate, nil)

	updated, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapEmployeeToResponse(updated, s.loadLookupNames(ctx)), nil
}

func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id int64) error {
	if err := s.employeeRepo.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.auditor.Record(ctx, "employee", id, audit.ActionDelete, nil)
	return nil
}

func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 10
	}

	employees, total, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	names := s.loadLookupNames(ctx)
	resp := employee.ListEmployeeResponse{
		Employees:  []employee.EmployeeResponse{},
		TotalItems: total,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Page:       filter.Page,
		Limit:      filter.Limit,
	}
	for _, emp := range employees {
		resp.Employees = append(resp.Employees, mapEmployeeToResponse(emp, names))
	}
	return resp, nil
}

func parseID(s *string) *int64 {
	if s == nil || *s == "" {
		return nil
	}
	id, ok := validator.ParseID(*s)
	if !ok {
		return nil
	}
	return &id
}
