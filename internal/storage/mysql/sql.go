package mysql

const selectBookingsSQL = `
SELECT
  booking_id,
  destination_country,
  destination_city,
  hotel_name,
  visitors,
  booking_price,
  discount,
  profit_margin,
  days,
  rooms
FROM bookings
`

const insertBookingsPrefix = "INSERT INTO bookings\n" +
	"  (booking_id, destination_country, destination_city, hotel_name, visitors, booking_price, discount, profit_margin, days, rooms)\n" +
	"VALUES "

const insertBookingsOnDup = " ON DUPLICATE KEY UPDATE\n" +
	"  destination_country = VALUES(destination_country),\n" +
	"  destination_city    = VALUES(destination_city),\n" +
	"  hotel_name          = VALUES(hotel_name),\n" +
	"  visitors            = VALUES(visitors),\n" +
	"  booking_price       = VALUES(booking_price),\n" +
	"  discount            = VALUES(discount),\n" +
	"  profit_margin       = VALUES(profit_margin),\n" +
	"  days                = VALUES(days),\n" +
	"  rooms               = VALUES(rooms),\n" +
	"  updated_at          = CURRENT_TIMESTAMP\n"
