package seeders

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Bayu-x3/Washify-Backend/config"
	"github.com/Bayu-x3/Washify-Backend/models"
)

func hash(password string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		log.Fatalf("failed to hash seed password: %v", err)
	}
	return string(h)
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func Seed() {
	db := config.DB

	// ============= Outlets =============
	outlets := []models.Outlet{
		{Nama: "Outlet 1", Alamat: "Alamat 1", Tlp: 1234567891},
		{Nama: "Outlet 2", Alamat: "Alamat 2", Tlp: 1234567892},
		{Nama: "Outlet 3", Alamat: "Alamat 3", Tlp: 1234567893},
	}
	for i := range outlets {
		db.FirstOrCreate(&outlets[i], models.Outlet{Nama: outlets[i].Nama})
	}

	// ============= Users =============
	users := []models.User{
		{Nama: "Admin", Username: "admin", Password: hash("admin123"), Role: "admin", IDOutlet: outlets[0].ID},
		{Nama: "Cashier 1", Username: "cashier1", Password: hash("cashier123"), Role: "cashier", IDOutlet: outlets[1].ID},
		{Nama: "Owner", Username: "owner", Password: hash("owner123"), Role: "owner", IDOutlet: outlets[2].ID},
		{Nama: "Cashier 2", Username: "cashier2", Password: hash("cashier123"), Role: "cashier", IDOutlet: outlets[0].ID},
		{Nama: "Cashier 3", Username: "cashier3", Password: hash("cashier123"), Role: "cashier", IDOutlet: outlets[1].ID},
	}
	for i := range users {
		db.FirstOrCreate(&users[i], models.User{Username: users[i].Username})
	}

	// ============= Members =============
	members := []models.Member{
		{Nama: "Icy Man", Alamat: "Jl. Raya 1", JenisKelamin: "laki_laki", Tlp: 1234567890},
		{Nama: "Manzy", Alamat: "Jl. Raya 2", JenisKelamin: "perempuan", Tlp: 9876543210},
		{Nama: "King", Alamat: "Jl. Raya 3", JenisKelamin: "perempuan", Tlp: 1230984567},
	}
	for i := range members {
		db.FirstOrCreate(&members[i], models.Member{Nama: members[i].Nama})
	}

	// ============= Pakets =============
	pakets := []models.Paket{
		{IDOutlet: outlets[0].ID, Jenis: "kiloan", NamaPaket: "Cuci Kiloan", Harga: 7000},
		{IDOutlet: outlets[0].ID, Jenis: "selimut", NamaPaket: "Cuci Selimut", Harga: 15000},
		{IDOutlet: outlets[1].ID, Jenis: "bed_cover", NamaPaket: "Cuci Bed Cover", Harga: 20000},
		{IDOutlet: outlets[1].ID, Jenis: "kaos", NamaPaket: "Cuci Kaos", Harga: 5000},
		{IDOutlet: outlets[2].ID, Jenis: "lain", NamaPaket: "Cuci Lainnya", Harga: 10000},
	}
	for i := range pakets {
		db.FirstOrCreate(&pakets[i], models.Paket{NamaPaket: pakets[i].NamaPaket})
	}

	// ============= Transaksi =============
	now := time.Now()
	due := now.AddDate(0, 0, 3)
	transaksi := []models.Transaksi{
		{
			IDOutlet: outlets[0].ID, KodeInvoice: "INV001", IDMember: members[0].ID,
			Tgl: now, BatasWaktu: due, TglBayar: timePtr(now),
			BiayaTambahan: 5000, Diskon: 10, Pajak: 2000,
			Status: "baru", Dibayar: "dibayar", IDUser: users[0].ID,
		},
		{
			IDOutlet: outlets[1].ID, KodeInvoice: "INV002", IDMember: members[1].ID,
			Tgl: now, BatasWaktu: due,
			BiayaTambahan: 3000, Diskon: 5, Pajak: 1500,
			Status: "proses", Dibayar: "belum_dibayar", IDUser: users[1].ID,
		},
		{
			IDOutlet: outlets[2].ID, KodeInvoice: "INV003", IDMember: members[2].ID,
			Tgl: now, BatasWaktu: due, TglBayar: timePtr(now),
			BiayaTambahan: 1000, Diskon: 15, Pajak: 1000,
			Status: "selesai", Dibayar: "dibayar", IDUser: users[2].ID,
		},
	}
	for i := range transaksi {
		db.FirstOrCreate(&transaksi[i], models.Transaksi{KodeInvoice: transaksi[i].KodeInvoice})
	}

	// ============= Detail Transaksi =============
	details := []models.DetailTransaksi{
		{IDTransaksi: transaksi[0].ID, IDPaket: pakets[0].ID, Qty: 2, Keterangan: "Cuci bersih dan setrika"},
		{IDTransaksi: transaksi[1].ID, IDPaket: pakets[1].ID, Qty: 1, Keterangan: "Hanya cuci"},
		{IDTransaksi: transaksi[2].ID, IDPaket: pakets[2].ID, Qty: 3, Keterangan: "Setrika dan lipat"},
	}
	for i := range details {
		db.FirstOrCreate(&details[i], models.DetailTransaksi{
			IDTransaksi: details[i].IDTransaksi,
			IDPaket:     details[i].IDPaket,
		})
	}

	log.Println("Seeding done: 3 outlets, 5 users, 3 members, 5 pakets, 3 transaksi")
}
